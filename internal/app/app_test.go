package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishRally/Sportitup/internal/config"
	"github.com/KrishRally/Sportitup/pkg/logger"
	"github.com/KrishRally/Sportitup/pkg/metrics"
)

const (
	ownerEmail    = "owner@sportitup.in"
	ownerPassword = "OwN3r!2025#"
	turfID        = "super-six-turf"
)

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newTestServer(t *testing.T, mutate func(cfg *config.Config)) string {
	t.Helper()
	t.Setenv("SPORTITUP_AUTH_TOKEN_SECRET", "test-secret")

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Demo.EnableReset = true
	cfg.Owners = append(cfg.Owners, config.OwnerConfig{
		ID: "owner-2", Email: "other@sportitup.in", Name: "Other", Password: "other-pass",
	})
	if mutate != nil {
		mutate(cfg)
	}

	a, err := New(context.Background(), cfg, metrics.New("test"), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	srv := httptest.NewServer(a.Handler)
	t.Cleanup(srv.Close)
	return srv.URL
}

func newClient(t *testing.T, base string) *client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{t: t, base: base, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path string, body interface{}, out interface{}) int {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (c *client) login(email, password string) {
	c.t.Helper()
	status := c.do(http.MethodPost, "/api/v1/owner/session", map[string]string{
		"email": email, "password": password,
	}, nil)
	require.Equal(c.t, http.StatusOK, status)
}

type bookingEnvelope struct {
	OK      bool `json:"ok"`
	Booking struct {
		ID      string   `json:"id"`
		OwnerID string   `json:"ownerId"`
		UserID  *string  `json:"userId"`
		Time    string   `json:"time"`
		Status  string   `json:"status"`
		Amount  *float64 `json:"amount"`
		Source  string   `json:"source"`
	} `json:"booking"`
}

type bookingList struct {
	Bookings []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"bookings"`
}

func tomorrow() string {
	return time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
}

func TestOwnerSession(t *testing.T) {
	base := newTestServer(t, nil)
	c := newClient(t, base)

	t.Run("admin requires session", func(t *testing.T) {
		status := c.do(http.MethodGet, "/api/v1/admin/bookings", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("wrong password", func(t *testing.T) {
		var resp map[string]string
		status := c.do(http.MethodPost, "/api/v1/owner/session", map[string]string{
			"email": ownerEmail, "password": "nope",
		}, &resp)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "invalid credentials", resp["error"])
	})

	t.Run("login then logout", func(t *testing.T) {
		c.login(ownerEmail, ownerPassword)
		assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/v1/admin/bookings", nil, nil))

		assert.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/api/v1/owner/session", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/v1/admin/bookings", nil, nil))
	})
}

func TestBlockBookUnblock(t *testing.T) {
	base := newTestServer(t, nil)
	owner := newClient(t, base)
	owner.login(ownerEmail, ownerPassword)
	public := newClient(t, base)
	date := tomorrow()
	slot := "10:00-11:00"

	status := owner.do(http.MethodPost, "/api/v1/admin/availability", map[string]string{
		"date": date, "slot": slot, "action": "block",
	}, nil)
	require.Equal(t, http.StatusOK, status)

	var avail struct {
		Slots        []string `json:"slots"`
		Blocked      []string `json:"blocked"`
		BlockedHours []string `json:"blockedHours"`
	}
	status = public.do(http.MethodGet, "/api/v1/public/availability?turfId="+turfID+"&date="+date, nil, &avail)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, avail.Slots, slot)
	assert.Contains(t, avail.Blocked, slot)
	assert.Contains(t, avail.BlockedHours, "10:00")

	booking := map[string]interface{}{
		"turfId": turfID, "date": date, "time": slot, "sport": "cricket", "customer": "Ravi",
	}
	assert.Equal(t, http.StatusConflict, public.do(http.MethodPost, "/api/v1/public/bookings", booking, nil))

	// владелец может бронировать поверх своей блокировки
	var created bookingEnvelope
	require.Equal(t, http.StatusCreated, owner.do(http.MethodPost, "/api/v1/admin/bookings", map[string]interface{}{
		"date": date, "time": slot, "sport": "cricket", "customer": "Walk-in",
	}, &created))
	assert.Equal(t, "owner-1", created.Booking.OwnerID)
	assert.Equal(t, "admin", created.Booking.Source)

	status = owner.do(http.MethodPost, "/api/v1/admin/availability", map[string]string{
		"date": date, "slot": slot, "action": "unblock",
	}, nil)
	require.Equal(t, http.StatusOK, status)

	// слот остается занятым бронированием
	var ownerAvail struct {
		Blocked []string `json:"blocked"`
	}
	require.Equal(t, http.StatusOK, owner.do(http.MethodGet, "/api/v1/admin/availability?date="+date, nil, &ownerAvail))
	assert.Equal(t, []string{slot}, ownerAvail.Blocked)
	assert.Equal(t, http.StatusConflict, public.do(http.MethodPost, "/api/v1/public/bookings", booking, nil))

	// отмена освобождает слот для витрины
	require.Equal(t, http.StatusOK, owner.do(http.MethodDelete, "/api/v1/admin/bookings/"+created.Booking.ID, nil, nil))
	var online bookingEnvelope
	require.Equal(t, http.StatusCreated, public.do(http.MethodPost, "/api/v1/public/bookings", booking, &online))
	assert.Equal(t, "online", online.Booking.Source)

	t.Run("unknown turf", func(t *testing.T) {
		status := public.do(http.MethodGet, "/api/v1/public/availability?turfId=nowhere&date="+date, nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestDuplicateSubmissionsWithoutConflictCheck(t *testing.T) {
	base := newTestServer(t, func(cfg *config.Config) {
		off := false
		cfg.Booking.RejectConflicts = &off
	})
	public := newClient(t, base)

	booking := map[string]interface{}{
		"turfId": turfID, "date": tomorrow(), "time": "18:00-19:00", "sport": "cricket", "customer": "Ravi",
	}
	assert.Equal(t, http.StatusCreated, public.do(http.MethodPost, "/api/v1/public/bookings", booking, nil))
	assert.Equal(t, http.StatusCreated, public.do(http.MethodPost, "/api/v1/public/bookings", booking, nil))
}

func TestEditAmountUpdatesStats(t *testing.T) {
	base := newTestServer(t, nil)
	owner := newClient(t, base)
	owner.login(ownerEmail, ownerPassword)
	today := time.Now().UTC().Format("2006-01-02")

	var created bookingEnvelope
	status := owner.do(http.MethodPost, "/api/v1/admin/bookings", map[string]interface{}{
		"date": today, "time": "07:00-08:00", "sport": "football", "customer": "Walk-in", "amount": 500,
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "admin", created.Booking.Source)

	type stats struct {
		Today struct {
			Bookings int     `json:"bookings"`
			Earnings float64 `json:"earnings"`
		} `json:"today"`
	}
	var before stats
	require.Equal(t, http.StatusOK, owner.do(http.MethodGet, "/api/v1/admin/stats", nil, &before))

	var updated bookingEnvelope
	status = owner.do(http.MethodPut, "/api/v1/admin/bookings/"+created.Booking.ID, map[string]interface{}{
		"amount": 750,
	}, &updated)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, updated.Booking.Amount)
	assert.Equal(t, 750.0, *updated.Booking.Amount)

	var after stats
	require.Equal(t, http.StatusOK, owner.do(http.MethodGet, "/api/v1/admin/stats", nil, &after))
	assert.Equal(t, before.Today.Bookings, after.Today.Bookings)
	assert.InDelta(t, 250.0, after.Today.Earnings-before.Today.Earnings, 0.001)

	// отмена убирает бронирование из статистики
	require.Equal(t, http.StatusOK, owner.do(http.MethodDelete, "/api/v1/admin/bookings/"+created.Booking.ID, nil, nil))
	var canceled stats
	require.Equal(t, http.StatusOK, owner.do(http.MethodGet, "/api/v1/admin/stats", nil, &canceled))
	assert.Equal(t, before.Today.Bookings-1, canceled.Today.Bookings)
}

func TestForeignOwnerSeesNotFound(t *testing.T) {
	base := newTestServer(t, nil)
	owner := newClient(t, base)
	owner.login(ownerEmail, ownerPassword)
	other := newClient(t, base)
	other.login("other@sportitup.in", "other-pass")

	var created bookingEnvelope
	require.Equal(t, http.StatusCreated, owner.do(http.MethodPost, "/api/v1/admin/bookings", map[string]interface{}{
		"date": tomorrow(), "time": "08:00-09:00", "sport": "cricket", "customer": "Walk-in",
	}, &created))
	path := "/api/v1/admin/bookings/" + created.Booking.ID

	assert.Equal(t, http.StatusOK, owner.do(http.MethodGet, path, nil, nil))
	assert.Equal(t, http.StatusNotFound, other.do(http.MethodGet, path, nil, nil))
	assert.Equal(t, http.StatusNotFound, other.do(http.MethodPut, path, map[string]interface{}{"customer": "X"}, nil))
	assert.Equal(t, http.StatusNotFound, other.do(http.MethodDelete, path, nil, nil))

	var list bookingList
	require.Equal(t, http.StatusOK, other.do(http.MethodGet, "/api/v1/admin/bookings", nil, &list))
	assert.Empty(t, list.Bookings)
}

func TestUserSessionAndHistory(t *testing.T) {
	base := newTestServer(t, nil)
	user := newClient(t, base)

	var anon struct {
		User *struct{} `json:"user"`
	}
	require.Equal(t, http.StatusOK, user.do(http.MethodGet, "/api/v1/auth/session", nil, &anon))
	assert.Nil(t, anon.User)
	assert.Equal(t, http.StatusUnauthorized, user.do(http.MethodGet, "/api/v1/public/bookings", nil, nil))

	var verified struct {
		OK   bool `json:"ok"`
		User struct {
			ID    string `json:"id"`
			Phone string `json:"phone"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	status := user.do(http.MethodPost, "/api/v1/auth/verify-otp", map[string]string{
		"firebaseUid": "uid-1", "phone": "98765 43210", "name": "Asha",
	}, &verified)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "+919876543210", verified.User.Phone)

	var created bookingEnvelope
	require.Equal(t, http.StatusCreated, user.do(http.MethodPost, "/api/v1/public/bookings", map[string]interface{}{
		"turfId": turfID, "date": tomorrow(), "time": "19:00-20:00", "sport": "cricket", "customer": "Asha",
	}, &created))
	require.NotNil(t, created.Booking.UserID)
	assert.Equal(t, verified.User.ID, *created.Booking.UserID)

	var history bookingList
	require.Equal(t, http.StatusOK, user.do(http.MethodGet, "/api/v1/public/bookings", nil, &history))
	require.Len(t, history.Bookings, 1)
	assert.Equal(t, created.Booking.ID, history.Bookings[0].ID)

	require.Equal(t, http.StatusOK, user.do(http.MethodPost, "/api/v1/auth/logout", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, user.do(http.MethodGet, "/api/v1/public/bookings", nil, nil))
}

func TestDemoReset(t *testing.T) {
	base := newTestServer(t, nil)
	owner := newClient(t, base)
	owner.login(ownerEmail, ownerPassword)

	require.Equal(t, http.StatusCreated, owner.do(http.MethodPost, "/api/v1/admin/bookings", map[string]interface{}{
		"date": tomorrow(), "time": "09:00-10:00", "sport": "cricket", "customer": "Walk-in",
	}, nil))
	require.Equal(t, http.StatusOK, owner.do(http.MethodPost, "/api/v1/admin/reset", nil, nil))

	var list bookingList
	require.Equal(t, http.StatusOK, owner.do(http.MethodGet, "/api/v1/admin/bookings", nil, &list))
	assert.Empty(t, list.Bookings)
}

func TestResetNotRegisteredWhenDisabled(t *testing.T) {
	base := newTestServer(t, func(cfg *config.Config) {
		cfg.Demo.EnableReset = false
	})
	owner := newClient(t, base)
	owner.login(ownerEmail, ownerPassword)

	status := owner.do(http.MethodPost, "/api/v1/admin/reset", nil, nil)
	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, status)
}

func TestMetricsEndpoint(t *testing.T) {
	base := newTestServer(t, nil)
	resp, err := http.Get(base + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	base := newTestServer(t, func(cfg *config.Config) {
		cfg.Auth.CORSOrigins = []string{"http://localhost:3000"}
	})

	req, err := http.NewRequest(http.MethodOptions, base+"/api/v1/admin/bookings", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
