package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

	"gorm.io/gorm"
)

const geminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// RecommendationService asks Gemini for meal suggestions based on the
// user's profile and the day's logged intake. The response text is
// returned to the caller as-is and never stored.
type RecommendationService struct {
	db     *gorm.DB
	client *http.Client
	apiKey string
	url    string
}

func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{
		db:     db,
		client: &http.Client{Timeout: 20 * time.Second},
		apiKey: os.Getenv("GEMINI_API_KEY"),
		url:    geminiURL,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (r *RecommendationService) GetRecommendations(userID uint, date time.Time) (string, error) {
	if r.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	var user models.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return "", err
	}

	var entries []models.FoodLogEntry
	if err := r.db.
		Preload("Food").
		Where("user_id = ? AND date_logged = ?", userID, models.Day(date)).
		Order("time_logged ASC").
		Find(&entries).Error; err != nil {
		return "", fmt.Errorf("db error fetching logs: %w", err)
	}

	prompt := r.buildPrompt(&user, entries)
	return r.generate(prompt)
}

func (r *RecommendationService) buildPrompt(user *models.User, entries []models.FoodLogEntry) string {
	calGoal, protGoal, carbGoal, fatGoal := user.GoalOrDefault()

	var sb strings.Builder
	sb.WriteString("You are a nutrition assistant for an Indian diet-planning app.\n")
	fmt.Fprintf(&sb, "User: %d years, %s, %.0f cm, %.0f kg, activity: %s, preference: %s",
		user.Age, user.Gender, user.HeightCm, user.WeightKg, user.ActivityLevel, user.FoodPreference)
	if user.IsDiabetic {
		sb.WriteString(", diabetic (suggest low-GI foods only)")
	}
	sb.WriteString(".\n")
	fmt.Fprintf(&sb, "Daily goals: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat.\n",
		calGoal, protGoal, carbGoal, fatGoal)

	sb.WriteString("Today's meals so far:\n")
	if len(entries) == 0 {
		sb.WriteString("- (no meals logged yet)\n")
	} else {
		for _, e := range entries {
			fmt.Fprintf(&sb, "- %s: %s, %.0fg, %.0f kcal, %.0fg protein\n",
				e.MealType, e.Food.Name, e.QuantityGrams, e.CaloriesConsumed, e.ProteinConsumed)
		}
	}
	sb.WriteString("Suggest what to eat for the rest of the day to meet the goals. Keep it short and practical.")
	return sb.String()
}

func (r *RecommendationService) generate(prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, r.url+"?key="+r.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(raw))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("error parsing Gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
