package psqlbuilder

import sq "github.com/Masterminds/squirrel"

// psql построитель запросов с плейсхолдерами $1, $2...
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Select(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...)
}

func Insert(table string) sq.InsertBuilder {
	return psql.Insert(table)
}

func Update(table string) sq.UpdateBuilder {
	return psql.Update(table)
}

func Delete(table string) sq.DeleteBuilder {
	return psql.Delete(table)
}
