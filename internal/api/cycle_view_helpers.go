package api

import (
	"github.com/terraincognita07/cyclecal/internal/cycle"
	"github.com/terraincognita07/cyclecal/internal/services"
)

func predictionView(prediction *cycle.Prediction) *predictionResponse {
	if prediction == nil {
		return nil
	}
	return &predictionResponse{
		NextPeriodStart: cycle.FormatDate(prediction.NextPeriodStart),
		OvulationDate:   cycle.FormatDate(prediction.OvulationDate),
		FertileWindow: fertileWindowResponse{
			Start: cycle.FormatDate(prediction.FertileWindow.Start),
			End:   cycle.FormatDate(prediction.FertileWindow.End),
		},
		AvgCycleLength: prediction.AvgCycleLength,
		AvgDuration:    prediction.AvgDuration,
	}
}

func overviewView(overview services.CycleOverview) overviewResponse {
	response := overviewResponse{
		Today:           overview.Today,
		RecordCount:     overview.RecordCount,
		CurrentCycleDay: overview.CurrentCycleDay,
		TodayStatus:     string(overview.TodayStatus),
		Prediction:      predictionView(overview.Prediction),
		CycleLengths:    trendPoints(overview.CycleLengths),
	}
	if overview.Countdown != nil {
		response.Countdown = &countdownResponse{
			DaysUntil: overview.Countdown.DaysUntil,
			Overdue:   overview.Countdown.Overdue,
		}
	}
	return response
}

func calendarView(view services.MonthView) calendarResponse {
	days := make([]calendarDayResponse, 0, len(view.Days))
	for _, day := range view.Days {
		days = append(days, calendarDayResponse{
			Date:    day.DateString,
			Day:     day.Day,
			InMonth: day.InMonth,
			IsToday: day.IsToday,
			Status:  string(day.Status),
		})
	}
	return calendarResponse{
		Month:      view.Month,
		Prediction: predictionView(view.Prediction),
		Days:       days,
	}
}

func statsView(view services.StatsView) statsResponse {
	symptoms := make([]symptomFrequencyResponse, 0, len(view.Symptoms))
	for _, frequency := range view.Symptoms {
		symptoms = append(symptoms, symptomFrequencyResponse{
			Tag:     frequency.Tag,
			Label:   frequency.Label,
			Icon:    frequency.Icon,
			Count:   frequency.Count,
			Percent: symptomPercent(frequency.Count, frequency.TotalRecords),
		})
	}
	return statsResponse{
		RecordCount:      view.RecordCount,
		CycleLengths:     trendPoints(view.CycleLengths),
		HasTrendData:     view.HasTrendData,
		HasReliableTrend: view.HasReliableTrend,
		Symptoms:         symptoms,
	}
}

func trendPoints(lengths []int) []int {
	if lengths == nil {
		return []int{}
	}
	return lengths
}

func symptomPercent(count int, total int) int {
	if total <= 0 {
		return 0
	}
	return (count*100 + total/2) / total
}
