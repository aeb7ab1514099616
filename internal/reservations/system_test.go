package reservations

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/events"
	"github.com/dmitrijs2005/macreserve/internal/logging"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(items []models.Equipment) []string {
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, e.Code)
	}
	return out
}

func login(t *testing.T, s *System, user, pass string) *Session {
	t.Helper()
	sess, err := s.Authenticate(context.Background(), user, pass)
	require.NoError(t, err)
	return sess
}

func TestReserveCloseScenario(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())

	sess := login(t, s, "acxell", "1234")
	assert.Equal(t, "acxell", sess.User().Username)

	r, err := sess.Reserve(ctx, "MAC-1", "01-06-2025", models.ShiftMorning, "08:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, "R-1", r.ID)
	assert.Equal(t, models.ReservationActive, r.Status)

	avail, err := sess.ListAvailable(ctx, "01-06-2025", models.ShiftMorning)
	require.NoError(t, err)
	assert.Equal(t, []string{"MAC-2", "MAC-3", "MAC-4", "MAC-5", "MAC-6"}, codes(avail))

	_, err = sess.Reserve(ctx, "MAC-1", "01-06-2025", models.ShiftMorning, "09:00", "10:00")
	assert.ErrorIs(t, err, common.ErrorDuplicateReservation)

	closed, err := sess.Close(ctx, "R-1")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationFinished, closed.Status)

	avail, err = sess.ListAvailable(ctx, "01-06-2025", models.ShiftMorning)
	require.NoError(t, err)
	assert.Contains(t, codes(avail), "MAC-1")
	assert.Len(t, avail, 6)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	s := NewSystem(logging.Nop())

	sess, err := s.Authenticate(context.Background(), "acxell", "nope")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Nil(t, sess)
	assert.Equal(t, 0, s.ledger.Len())
}

func TestSessionFor(t *testing.T) {
	s := NewSystem(logging.Nop())

	sess, err := s.SessionFor("daniel")
	require.NoError(t, err)
	assert.Equal(t, "daniel", sess.User().Username)

	_, err = s.SessionFor("ghost")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestReserve_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())
	sess := login(t, s, "daniel", "4321")

	tests := []struct {
		name       string
		code       string
		date       string
		shift      models.Shift
		start, end string
		want       error
	}{
		{"bad date", "MAC-1", "2025-06-01", models.ShiftMorning, "08:00", "10:00", common.ErrorInvalidInput},
		{"impossible date", "MAC-1", "31-02-2025", models.ShiftMorning, "08:00", "10:00", common.ErrorInvalidInput},
		{"bad shift", "MAC-1", "01-06-2025", models.Shift("night"), "08:00", "10:00", common.ErrorInvalidInput},
		{"bad clock", "MAC-1", "01-06-2025", models.ShiftMorning, "8am", "10:00", common.ErrorInvalidInput},
		{"end before start", "MAC-1", "01-06-2025", models.ShiftMorning, "17:00", "08:00", common.ErrorInvalidInput},
		{"unknown equipment", "MAC-99", "01-06-2025", models.ShiftMorning, "08:00", "10:00", common.ErrorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sess.Reserve(ctx, tt.code, tt.date, tt.shift, tt.start, tt.end)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, 0, s.ledger.Len())
}

func TestReserve_SameEquipmentOtherSlotsAllowed(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())
	sess := login(t, s, "acxell", "1234")

	_, err := sess.Reserve(ctx, "MAC-2", "01-06-2025", models.ShiftMorning, "08:00", "12:00")
	require.NoError(t, err)
	_, err = sess.Reserve(ctx, "MAC-2", "01-06-2025", models.ShiftAfternoon, "12:00", "21:00")
	require.NoError(t, err)
	_, err = sess.Reserve(ctx, "MAC-2", "02-06-2025", models.ShiftMorning, "08:00", "12:00")
	require.NoError(t, err)

	assert.Len(t, sess.ListMine(ctx), 3)
}

func TestClose_ForeignReservationNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())
	owner := login(t, s, "acxell", "1234")
	other := login(t, s, "renato", "5678")

	r, err := owner.Reserve(ctx, "MAC-3", "01-06-2025", models.ShiftAfternoon, "12:00", "15:00")
	require.NoError(t, err)

	_, err = other.Close(ctx, r.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Len(t, owner.ListMine(ctx), 1)
	assert.Empty(t, other.ListMine(ctx))

	_, err = other.Close(ctx, "R-42")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestEquipmentStatusFollowsLedger(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())
	sess := login(t, s, "acxell", "1234")

	r, err := sess.Reserve(ctx, "MAC-4", "01-06-2025", models.ShiftMorning, "08:00", "09:00")
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentReserved, s.Equipment()[3].Status)

	_, err = sess.Close(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentAvailable, s.Equipment()[3].Status)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())
	a := login(t, s, "acxell", "1234")
	d := login(t, s, "daniel", "4321")

	r1, err := a.Reserve(ctx, "MAC-5", "01-06-2025", models.ShiftMorning, "08:00", "09:00")
	require.NoError(t, err)
	_, err = a.Close(ctx, r1.ID)
	require.NoError(t, err)
	_, err = d.Reserve(ctx, "MAC-5", "01-06-2025", models.ShiftMorning, "10:00", "11:00")
	require.NoError(t, err)

	h, err := d.History(ctx, "MAC-5")
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, "acxell", h[0].Owner)
	assert.Equal(t, models.ReservationFinished, h[0].Status)
	assert.Equal(t, "daniel", h[1].Owner)

	_, err = d.History(ctx, "MAC-0")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestConcurrentSessionsShareLedger(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())
	sessions := []*Session{
		login(t, s, "acxell", "1234"),
		login(t, s, "daniel", "4321"),
		login(t, s, "renato", "5678"),
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(sess *Session) {
			defer wg.Done()
			if _, err := sess.Reserve(ctx, "MAC-6", "05-06-2025", models.ShiftAfternoon, "12:00", "13:00"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(sessions[i%len(sessions)])
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, s.ledger.ActiveCount())
}

func TestEventsPublishedOnReserveAndClose(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())
	feed, cancel := s.Events().Subscribe(8)
	defer cancel()

	sess := login(t, s, "acxell", "1234")
	_, err := sess.Reserve(ctx, "MAC-2", "02-06-2025", models.ShiftAfternoon, "12:00", "15:00")
	require.NoError(t, err)

	_, err = sess.Reserve(ctx, "MAC-2", "02-06-2025", models.ShiftAfternoon, "12:00", "15:00")
	require.ErrorIs(t, err, common.ErrorDuplicateReservation)

	_, err = sess.Close(ctx, "R-1")
	require.NoError(t, err)

	created := <-feed
	assert.Equal(t, events.ReservationCreated, created.Type)
	assert.Equal(t, "MAC-2", created.Reservation.Equipment)

	returned := <-feed
	assert.Equal(t, events.ReservationReturned, returned.Type)
	assert.Equal(t, models.ReservationFinished, returned.Reservation.Status)

	select {
	case e := <-feed:
		t.Fatalf("unexpected event %v", e)
	default:
	}
}

func TestClose_AgainAfterRebookIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(logging.Nop())
	feed, cancel := s.Events().Subscribe(8)
	defer cancel()

	a := login(t, s, "acxell", "1234")
	d := login(t, s, "daniel", "4321")

	first, err := a.Reserve(ctx, "MAC-1", "01-06-2025", models.ShiftMorning, "08:00", "17:00")
	require.NoError(t, err)
	_, err = a.Close(ctx, first.ID)
	require.NoError(t, err)

	second, err := d.Reserve(ctx, "MAC-1", "01-06-2025", models.ShiftMorning, "08:00", "17:00")
	require.NoError(t, err)

	again, err := a.Close(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationFinished, again.Status)

	assert.Equal(t, models.EquipmentReserved, s.Equipment()[0].Status)
	assert.Equal(t, []models.Reservation{second}, d.ListMine(ctx))

	var returned int
	for len(feed) > 0 {
		if e := <-feed; e.Type == events.ReservationReturned {
			returned++
			assert.Equal(t, first.ID, e.Reservation.ID)
		}
	}
	assert.Equal(t, 1, returned)
}
