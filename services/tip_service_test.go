package services

import (
	"testing"

	"github.com/VictoriaKoe/NutriTrack/models"
)

func TestSaveTipAppendsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewTipService(db)
	seedPatient(t, db, models.Patient{UserID: 1, PhoneNumber: "1", Gender: models.GenderMale})

	text := "Swap soft drinks for water with dinner."
	if _, err := svc.SaveTip(1, text); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if _, err := svc.SaveTip(1, text); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	tips, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tips) != 2 {
		t.Fatalf("the log is append-only, expected 2 rows, got %d", len(tips))
	}
}

func TestListByUserOrdersOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewTipService(db)
	seedPatient(t, db, models.Patient{UserID: 1, PhoneNumber: "1", Gender: models.GenderFemale})
	seedPatient(t, db, models.Patient{UserID: 2, PhoneNumber: "2", Gender: models.GenderMale})

	if _, err := svc.SaveTip(1, "first"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := svc.SaveTip(2, "other user"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := svc.SaveTip(1, "second"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	tips, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tips) != 2 {
		t.Fatalf("expected 2 tips for user 1, got %d", len(tips))
	}
	if tips[0].GeneratedResponse != "first" || tips[1].GeneratedResponse != "second" {
		t.Fatalf("tips out of order: %+v", tips)
	}
}

func TestListByUserEmpty(t *testing.T) {
	svc := NewTipService(newTestDB(t))

	tips, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tips) != 0 {
		t.Fatalf("expected no tips, got %d", len(tips))
	}
}
