package models

import (
	"encoding/json"
	"fmt"
)

// Feedback mirrors the shape the analysis prompt asks the model for. The
// handler relays the model's JSON untouched; this type exists for the
// advisory shape check and for API consumers.
type Feedback struct {
	OverallScore float64          `json:"overallScore"`
	ATS          ScoredTips       `json:"ATS"`
	ToneAndStyle ScoredDetailTips `json:"toneAndStyle"`
	Content      ScoredDetailTips `json:"content"`
	Structure    ScoredDetailTips `json:"structure"`
	Skills       ScoredDetailTips `json:"skills"`
}

type ScoredTips struct {
	Score float64 `json:"score"`
	Tips  []Tip   `json:"tips"`
}

type ScoredDetailTips struct {
	Score float64     `json:"score"`
	Tips  []DetailTip `json:"tips"`
}

type Tip struct {
	Type string `json:"type"`
	Tip  string `json:"tip"`
}

type DetailTip struct {
	Type        string `json:"type"`
	Tip         string `json:"tip"`
	Explanation string `json:"explanation"`
}

// ValidateFeedback checks the parsed model output against the advisory
// schema. Callers log the returned error; the response is relayed either way.
func ValidateFeedback(raw json.RawMessage) error {
	var fb Feedback
	if err := json.Unmarshal(raw, &fb); err != nil {
		return fmt.Errorf("feedback does not match schema: %w", err)
	}

	if fb.OverallScore < 0 || fb.OverallScore > 100 {
		return fmt.Errorf("overallScore %.0f out of range", fb.OverallScore)
	}

	categories := map[string]struct {
		score float64
		tips  int
	}{
		"ATS":          {fb.ATS.Score, len(fb.ATS.Tips)},
		"toneAndStyle": {fb.ToneAndStyle.Score, len(fb.ToneAndStyle.Tips)},
		"content":      {fb.Content.Score, len(fb.Content.Tips)},
		"structure":    {fb.Structure.Score, len(fb.Structure.Tips)},
		"skills":       {fb.Skills.Score, len(fb.Skills.Tips)},
	}

	for name, cat := range categories {
		if cat.score < 0 || cat.score > 100 {
			return fmt.Errorf("%s score %.0f out of range", name, cat.score)
		}
		if cat.tips == 0 {
			return fmt.Errorf("%s has no tips", name)
		}
	}

	for _, tip := range fb.ATS.Tips {
		if tip.Type != "good" && tip.Type != "improve" {
			return fmt.Errorf("ATS tip has invalid type %q", tip.Type)
		}
	}
	for name, tips := range map[string][]DetailTip{
		"toneAndStyle": fb.ToneAndStyle.Tips,
		"content":      fb.Content.Tips,
		"structure":    fb.Structure.Tips,
		"skills":       fb.Skills.Tips,
	} {
		for _, tip := range tips {
			if tip.Type != "good" && tip.Type != "improve" {
				return fmt.Errorf("%s tip has invalid type %q", name, tip.Type)
			}
		}
	}

	return nil
}
