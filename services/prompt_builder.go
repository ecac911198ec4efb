package services

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/VictoriaKoe/NutriTrack/models"
)

// TipPrompts builds the candidate coaching prompts for one user. The first
// two are generic; the rest are grounded in the user's questionnaire answers
// and HEIFA scores when those are available.
func TipPrompts(patient *models.Patient, intake *models.FoodIntake) []string {
	prompts := []string{
		"Give a practical and actionable healthy eating tip for busy people. Make it specific and easy to follow.",
		"Generate a short encouraging message to help someone improve their fruit intake.",
	}

	if intake != nil {
		prompts = append(prompts, fmt.Sprintf(
			"Give any tips to the current user to improve lifestyle based on the food intake response as stated below: %s",
			describeIntake(intake)))
	}
	if patient != nil {
		prompts = append(prompts, fmt.Sprintf(
			"Give any advices/suggestions to the user based on the scores given: %s",
			describeScores(patient)))
	}

	return prompts
}

// PickTipPrompt chooses one prompt at random, mirroring the coach screen's
// behavior of surprising the user with a different angle each time.
func PickTipPrompt(patient *models.Patient, intake *models.FoodIntake) string {
	prompts := TipPrompts(patient, intake)
	return prompts[rand.Intn(len(prompts))]
}

// ClinicianPatternsPrompt asks for three key data patterns over the whole
// patient dataset (gender plus all scores per user).
func ClinicianPatternsPrompt(patients []models.Patient) string {
	var sb strings.Builder
	for i := range patients {
		sb.WriteString(fmt.Sprintf("user gender: %s, %s\n", patients[i].Gender, describeScores(&patients[i])))
	}
	return "Generate three key data patterns based on the given dataset: " + sb.String()
}

func describeScores(p *models.Patient) string {
	return fmt.Sprintf(
		"total HEIFA scores: %g, "+
			"discretionary HEIFA scores: %g, "+
			"fruits HEIFA scores: %g, "+
			"vegetable HEIFA scores: %g, "+
			"grains and cereals HEIFA scores: %g, "+
			"whole grains HEIFA scores: %g, "+
			"meat and alternatives HEIFA scores: %g, "+
			"sodium HEIFA scores: %g, "+
			"alcohol HEIFA scores: %g, "+
			"water HEIFA scores: %g, "+
			"sugar HEIFA scores: %g, "+
			"saturated fat HEIFA scores: %g, "+
			"unsaturated fat HEIFA scores: %g",
		p.TotalHEIFAScore,
		p.DiscretionaryHEIFAScore,
		p.FruitHEIFAScore,
		p.VegetableHEIFAScore,
		p.GrainsAndCerealsHEIFAScore,
		p.WholeGrainsHEIFAScore,
		p.MeatAndAlternativesHEIFAScore,
		p.SodiumHEIFAScore,
		p.AlcoholHEIFAScore,
		p.WaterHEIFAScore,
		p.SugarHEIFAScore,
		p.SaturatedFatHEIFAScore,
		p.UnsaturatedFatHEIFAScore,
	)
}

func describeIntake(in *models.FoodIntake) string {
	eats := func(yes bool) string {
		if yes {
			return "yes"
		}
		return "no"
	}
	return fmt.Sprintf(
		"fruits: %s, vegetables: %s, grains: %s, red meat: %s, seafood: %s, "+
			"poultry: %s, fish: %s, eggs: %s, nuts/seeds: %s, persona: %s, "+
			"biggest meal time: %s, sleep time: %s, wake up time: %s",
		eats(in.Fruits), eats(in.Vegetables), eats(in.Grains), eats(in.RedMeat),
		eats(in.Seafood), eats(in.Poultry), eats(in.Fish), eats(in.Eggs),
		eats(in.NutsSeeds), in.Persona, in.MealTime, in.SleepTime, in.WakeUpTime,
	)
}
