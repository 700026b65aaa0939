package booking

import (
	"context"
	"errors"
	"testing"

	"allservices/models"
)

func createTestBooking(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), "client-1", validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return b
}

func TestProviderMovesBookingForward(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)

	updated, err := svc.UpdateStatus(context.Background(), b.ID, "prov-1", models.BookingConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != models.BookingConfirmed {
		t.Fatalf("expected confirmed, got %q", updated.Status)
	}

	updated, err = svc.UpdateStatus(context.Background(), b.ID, "prov-1", models.BookingCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != models.BookingCompleted {
		t.Fatalf("expected completed, got %q", updated.Status)
	}
}

func TestProviderMayRewindStatus(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)

	if _, err := svc.UpdateStatus(context.Background(), b.ID, "prov-1", models.BookingCompleted); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	// Only enum membership and the actor rule are checked; the
	// provider may move a booking backwards, e.g. to amend a
	// completion recorded by mistake.
	updated, err := svc.UpdateStatus(context.Background(), b.ID, "prov-1", models.BookingPending)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != models.BookingPending {
		t.Fatalf("expected pending, got %q", updated.Status)
	}
}

func TestClientCannotConfirmOrComplete(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)

	for _, status := range []string{models.BookingConfirmed, models.BookingCompleted} {
		if _, err := svc.UpdateStatus(context.Background(), b.ID, "client-1", status); !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("status %q: expected ErrNotAuthorized for client, got %v", status, err)
		}
	}
}

func TestEitherPartyMayCancel(t *testing.T) {
	svc, _ := newTestService()

	b := createTestBooking(t, svc)
	updated, err := svc.Cancel(context.Background(), b.ID, "client-1")
	if err != nil {
		t.Fatalf("client cancel returned error: %v", err)
	}
	if updated.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled, got %q", updated.Status)
	}

	b = createTestBooking(t, svc)
	updated, err = svc.Cancel(context.Background(), b.ID, "prov-1")
	if err != nil {
		t.Fatalf("provider cancel returned error: %v", err)
	}
	if updated.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled, got %q", updated.Status)
	}
}

func TestThirdPartyCannotCancel(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)

	if _, err := svc.Cancel(context.Background(), b.ID, "stranger"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)

	if _, err := svc.UpdateStatus(context.Background(), b.ID, "prov-1", "paused"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.UpdateStatus(context.Background(), "missing", "prov-1", models.BookingConfirmed); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
