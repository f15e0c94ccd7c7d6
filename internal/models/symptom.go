package models

type Symptom struct {
	Tag   string
	Label string
	Icon  string
}

func SymptomVocabulary() []Symptom {
	return []Symptom{
		{Tag: "cramps", Label: "Cramps", Icon: "🩸"},
		{Tag: "headache", Label: "Headache", Icon: "🤕"},
		{Tag: "mood_swings", Label: "Mood swings", Icon: "😢"},
		{Tag: "bloating", Label: "Bloating", Icon: "🎈"},
		{Tag: "fatigue", Label: "Fatigue", Icon: "😴"},
		{Tag: "breast_tenderness", Label: "Breast tenderness", Icon: "💔"},
		{Tag: "acne", Label: "Acne", Icon: "🔴"},
		{Tag: "back_pain", Label: "Back pain", Icon: "🦴"},
		{Tag: "nausea", Label: "Nausea", Icon: "🤢"},
		{Tag: "spotting", Label: "Spotting", Icon: "🩹"},
		{Tag: "irritability", Label: "Irritability", Icon: "😤"},
		{Tag: "insomnia", Label: "Insomnia", Icon: "🌙"},
		{Tag: "food_cravings", Label: "Food cravings", Icon: "🍫"},
		{Tag: "diarrhea", Label: "Diarrhea", Icon: "🚽"},
		{Tag: "constipation", Label: "Constipation", Icon: "🪨"},
	}
}
