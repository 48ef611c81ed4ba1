package venues

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KrishRally/Sportitup/internal/config"
	"github.com/KrishRally/Sportitup/internal/domain"
	"github.com/KrishRally/Sportitup/internal/service/venues/models"
	"github.com/KrishRally/Sportitup/pkg/types"
)

// Service каталог площадок (turf -> владелец). Неизменяем после создания.
type Service struct {
	venues          []*domain.Venue
	byID            map[string]*domain.Venue
	fallbackOwnerID string
}

// NewService fallbackOwnerID - владелец для неизвестных площадок; пусто - без подстановки
func NewService(venues []*domain.Venue, fallbackOwnerID string) *Service {
	s := &Service{
		venues:          venues,
		byID:            make(map[string]*domain.Venue, len(venues)),
		fallbackOwnerID: fallbackOwnerID,
	}
	for _, v := range venues {
		s.byID[v.ID] = v
	}
	return s
}

// FromConfig строит каталог из конфигурации с проверкой времени работы и видов спорта
func FromConfig(catalog []config.VenueConfig) ([]*domain.Venue, error) {
	venues := make([]*domain.Venue, 0, len(catalog))
	for _, vc := range catalog {
		open, err := types.NewTimeStringFromString(vc.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: venue %s open_time: %v", ErrInvalidCatalog, vc.ID, err)
		}
		closeAt, err := types.NewTimeStringFromString(vc.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: venue %s close_time: %v", ErrInvalidCatalog, vc.ID, err)
		}
		if !open.IsBefore(closeAt) {
			return nil, fmt.Errorf("%w: venue %s closes before it opens", ErrInvalidCatalog, vc.ID)
		}

		sports := make([]domain.Sport, 0, len(vc.Sports))
		for _, raw := range vc.Sports {
			sport := domain.Sport(strings.ToLower(strings.TrimSpace(raw)))
			if !sport.IsValid() {
				return nil, fmt.Errorf("%w: venue %s unknown sport %q", ErrInvalidCatalog, vc.ID, raw)
			}
			sports = append(sports, sport)
		}

		venues = append(venues, &domain.Venue{
			ID:           vc.ID,
			Name:         vc.Name,
			Location:     vc.Location,
			OwnerID:      vc.OwnerID,
			Sports:       sports,
			PricePerHour: vc.PricePerHour,
			OpenTime:     open,
			CloseTime:    closeAt,
		})
	}
	return venues, nil
}

// List все площадки в порядке каталога
func (s *Service) List() *models.VenueListResponse {
	return models.FromDomainVenueList(s.venues)
}

// Get площадка по ID, без подстановки владельца по умолчанию
func (s *Service) Get(id string) (*domain.Venue, error) {
	v, ok := s.byID[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return v, nil
}

// ResolveOwner владелец площадки. Для неизвестной площадки возвращает fallback владельца
// (venue = nil), если он настроен, иначе ErrVenueNotFound.
func (s *Service) ResolveOwner(id string) (string, *domain.Venue, error) {
	if v, ok := s.byID[id]; ok {
		return v.OwnerID, v, nil
	}
	if s.fallbackOwnerID != "" {
		return s.fallbackOwnerID, nil, nil
	}
	return "", nil, ErrVenueNotFound
}

// OwnerSlots объединение часовых слотов площадок владельца, по времени начала.
// Без площадок - сетка по умолчанию 06:00-22:00.
func (s *Service) OwnerSlots(ownerID string) []string {
	seen := make(map[string]struct{})
	slots := make([]string, 0)
	for _, v := range s.venues {
		if v.OwnerID != ownerID {
			continue
		}
		for _, slot := range v.HourlySlots() {
			if _, dup := seen[slot]; dup {
				continue
			}
			seen[slot] = struct{}{}
			slots = append(slots, slot)
		}
	}

	if len(slots) == 0 {
		return domain.DefaultSlotLabels()
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i] < slots[j]
	})
	return slots
}
