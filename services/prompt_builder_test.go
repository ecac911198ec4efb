package services

import (
	"strings"
	"testing"

	"github.com/VictoriaKoe/NutriTrack/models"
)

func TestTipPromptsGrowWithAvailableData(t *testing.T) {
	if got := len(TipPrompts(nil, nil)); got != 2 {
		t.Fatalf("expected 2 generic prompts, got %d", got)
	}

	intake := intakeFixture(models.PersonaBalanceSeeker)
	prompts := TipPrompts(nil, &intake)
	if len(prompts) != 3 {
		t.Fatalf("expected a third intake-based prompt, got %d", len(prompts))
	}
	if !strings.Contains(prompts[2], models.PersonaBalanceSeeker) {
		t.Fatalf("intake prompt must carry the persona: %q", prompts[2])
	}

	patient := models.Patient{UserID: 1, Gender: models.GenderMale, TotalHEIFAScore: 75.3, FruitHEIFAScore: 8}
	prompts = TipPrompts(&patient, &intake)
	if len(prompts) != 4 {
		t.Fatalf("expected a fourth score-based prompt, got %d", len(prompts))
	}
	if !strings.Contains(prompts[3], "75.3") {
		t.Fatalf("score prompt must carry the total score: %q", prompts[3])
	}
}

func TestPickTipPromptReturnsACandidate(t *testing.T) {
	intake := intakeFixture(models.PersonaMindfulEater)
	patient := models.Patient{UserID: 1, Gender: models.GenderFemale}
	candidates := TipPrompts(&patient, &intake)

	for i := 0; i < 20; i++ {
		picked := PickTipPrompt(&patient, &intake)
		found := false
		for _, c := range candidates {
			if picked == c {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("picked prompt is not one of the candidates: %q", picked)
		}
	}
}

func TestClinicianPatternsPromptIncludesEveryPatient(t *testing.T) {
	patients := []models.Patient{
		{UserID: 1, Gender: models.GenderMale, TotalHEIFAScore: 60.5},
		{UserID: 2, Gender: models.GenderFemale, TotalHEIFAScore: 88},
	}

	prompt := ClinicianPatternsPrompt(patients)
	if !strings.HasPrefix(prompt, "Generate three key data patterns") {
		t.Fatalf("unexpected prompt prefix: %q", prompt)
	}
	if !strings.Contains(prompt, "user gender: Male") || !strings.Contains(prompt, "user gender: Female") {
		t.Fatalf("prompt must include every patient's gender: %q", prompt)
	}
	if !strings.Contains(prompt, "60.5") || !strings.Contains(prompt, "88") {
		t.Fatalf("prompt must include the total scores: %q", prompt)
	}
}
