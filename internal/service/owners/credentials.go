package owners

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/KrishRally/Sportitup/internal/config"
	"github.com/KrishRally/Sportitup/internal/domain"
)

// dummyHash сравнивается при неизвестном email, чтобы время ответа не выдавало наличие владельца
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("sportitup-dummy-password"), bcrypt.MinCost)

// FromConfig строит владельцев из конфигурации. Пароль в открытом виде хешируется здесь
// и дальше в памяти не хранится.
func FromConfig(cfg []config.OwnerConfig) ([]*domain.Owner, error) {
	owners := make([]*domain.Owner, 0, len(cfg))
	for _, oc := range cfg {
		var hash []byte
		switch {
		case oc.PasswordHash != "":
			if _, err := bcrypt.Cost([]byte(oc.PasswordHash)); err != nil {
				return nil, fmt.Errorf("%w: owner %s password_hash: %v", ErrInvalidInput, oc.ID, err)
			}
			hash = []byte(oc.PasswordHash)
		case oc.Password != "":
			h, err := bcrypt.GenerateFromPassword([]byte(oc.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("%w: hash password for owner %s: %v", ErrInternal, oc.ID, err)
			}
			hash = h
		default:
			return nil, fmt.Errorf("%w: owner %s has no credential", ErrInvalidInput, oc.ID)
		}

		owners = append(owners, &domain.Owner{
			ID:           oc.ID,
			Email:        strings.ToLower(strings.TrimSpace(oc.Email)),
			Name:         oc.Name,
			PasswordHash: hash,
		})
	}
	return owners, nil
}

func checkPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
