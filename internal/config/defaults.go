package config

// DefaultOwners демо-владелец
func DefaultOwners() []OwnerConfig {
	return []OwnerConfig{
		{
			ID:       "owner-1",
			Email:    "owner@sportitup.in",
			Name:     "Demo Owner",
			Password: "OwN3r!2025#",
		},
	}
}

// DefaultVenues каталог площадок витрины, все принадлежат owner-1
func DefaultVenues() []VenueConfig {
	return []VenueConfig{
		{
			ID: "super-six-turf", Name: "Super Six Turf", Location: "Suncity, Batala Road, Amritsar",
			OwnerID: "owner-1", Sports: []string{"cricket"}, PricePerHour: 1000, OpenTime: "06:00", CloseTime: "22:00",
		},
		{
			ID: "theturfplay", Name: "theturfplay", Location: "Loharka Road, Amritsar",
			OwnerID: "owner-1", Sports: []string{"cricket"}, PricePerHour: 1200, OpenTime: "06:00", CloseTime: "22:00",
		},
		{
			ID: "the-pavilion-amritsar-cricket", Name: "The Pavilion Amritsar", Location: "Loharka Road, Amritsar",
			OwnerID: "owner-1", Sports: []string{"cricket"}, PricePerHour: 1200, OpenTime: "06:00", CloseTime: "23:59",
		},
		{
			ID: "pickleup-amritsar", Name: "Pickleup Amritsar", Location: "Lumsden Club, Amritsar",
			OwnerID: "owner-1", Sports: []string{"pickleball"}, PricePerHour: 600, OpenTime: "06:00", CloseTime: "23:00",
		},
		{
			ID: "the-pavilion-amritsar-pickleball", Name: "The Pavilion Amritsar", Location: "Loharka Road, Amritsar",
			OwnerID: "owner-1", Sports: []string{"pickleball"}, PricePerHour: 1000, OpenTime: "06:00", CloseTime: "23:59",
		},
		{
			ID: "box-cricket-patiala", Name: "Box cricket Patiala", Location: "Sheesh Mahal Enclave, Patiala",
			OwnerID: "owner-1", Sports: []string{"cricket"}, PricePerHour: 1000, OpenTime: "06:00", CloseTime: "22:00",
		},
		{
			ID: "pickeball-patiala", Name: "Pickeball Patiala", Location: "Leela Bhawan, Patiala",
			OwnerID: "owner-1", Sports: []string{"pickleball"}, PricePerHour: 600, OpenTime: "10:00", CloseTime: "22:00",
		},
	}
}
