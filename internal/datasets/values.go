package datasets

// Each accessor returns freshly allocated slices so callers may not alias
// the figures of another chart.

var sectors = []string{
	"Technology", "Healthcare", "Financials", "Cons. Disc.", "Industrials", "Comm. Svc.",
	"Energy", "Cons. Staples", "Utilities", "Real Estate", "Materials",
}

func strs(v []string) []string { return append([]string(nil), v...) }
func nums(v ...float64) []float64 { return v }

// SP500 returns the year-end index level from 2006 to February 2026.
func SP500() SP500History {
	return SP500History{Labeled{
		Labels: []string{"2006", "2007", "2008", "2009", "2010", "2011", "2012", "2013", "2014", "2015",
			"2016", "2017", "2018", "2019", "2020", "2021", "2022", "2023", "2024", "2025", "Feb 2026"},
		Values: nums(1418, 1468, 903, 1115, 1258, 1258, 1426, 1848, 2059, 2044,
			2239, 2674, 2507, 3231, 3756, 4766, 3840, 4770, 5881, 6845, 6836),
	}}
}

// Returns returns calendar-year returns from 2006 to 2025.
func Returns() AnnualReturns {
	return AnnualReturns{Labeled{
		Labels: []string{"2006", "2007", "2008", "2009", "2010", "2011", "2012", "2013", "2014", "2015",
			"2016", "2017", "2018", "2019", "2020", "2021", "2022", "2023", "2024", "2025"},
		Values: nums(15.8, 5.5, -37.0, 26.5, 15.1, 2.1, 16.0, 32.4, 13.7, 1.4,
			12.0, 21.8, -4.4, 31.5, 18.4, 28.7, -18.1, 26.3, 25.0, 16.4),
	}}
}

// Valuations returns CAPE and forward P/E at the major market peaks.
func Valuations() Valuation {
	return Valuation{
		Peaks:     []string{"1929 Peak", "2000 Peak", "2007 Peak", "2021 Peak", "Current\n(Feb 2026)"},
		CAPE:      nums(33.1, 44.2, 27.5, 38.6, 39.7),
		ForwardPE: nums(20.0, 27.2, 15.7, 22.4, 21.5),
	}
}

// Sectors returns 2025 full-year and 2026 year-to-date sector returns.
func Sectors() SectorPerformance {
	return SectorPerformance{
		Sectors:  strs(sectors),
		FullYear: nums(24.0, 14.6, 15.0, 6.0, 19.4, 33.7, 8.3, 3.9, 16.0, 3.2, -10.5),
		YTD:      nums(-2.0, 8.0, -3.0, -4.0, -1.5, -1.0, 14.0, 7.0, 5.0, 3.0, 7.0),
	}
}

func mag7(remainder string) Concentration {
	return Concentration{Weights: []Weight{
		{Name: "Apple", Value: 7.3, Tone: "blue"},
		{Name: "Microsoft", Value: 6.0, Tone: "green"},
		{Name: "NVIDIA", Value: 6.5, Tone: "purple"},
		{Name: "Amazon", Value: 4.2, Tone: "orange"},
		{Name: "Alphabet", Value: 4.1, Tone: "teal"},
		{Name: "Meta", Value: 3.2, Tone: "pink"},
		{Name: "Tesla", Value: 2.7, Tone: "red"},
		{Name: remainder, Value: 66.0},
	}}
}

// Mag7 returns the weights shown on the concentration doughnut.
func Mag7() Concentration { return mag7("Other 493 Stocks") }

// Mag7Treemap returns the same weights with the shorter remainder label
// that fits inside a treemap tile.
func Mag7Treemap() Concentration { return mag7("Other 493") }

// Buffett returns market cap to GDP from 2000 to February 2026.
func Buffett() BuffettIndicator {
	return BuffettIndicator{
		Labeled: Labeled{
			Labels: []string{"2000", "2003", "2005", "2007", "2009", "2011", "2013", "2015", "2017",
				"2019", "2021", "2023", "2025", "Feb 2026"},
			Values: nums(148, 72, 100, 110, 56, 79, 109, 117, 137, 153, 200, 171, 195, 220),
		},
		Baseline: 100,
	}
}

// SentimentReadings returns the current and the extreme-bullish readings.
func SentimentReadings() Sentiment {
	return Sentiment{
		Indicators: []RadarIndicator{
			{Name: "AAII Bull %", Max: 100},
			{Name: "Put/Call\nRatio", Max: 100},
			{Name: "VIX Level", Max: 100},
			{Name: "CNN\nFear/Greed", Max: 100},
			{Name: "Fund Mgr\nCash", Max: 100},
			{Name: "Insider\nBuy/Sell", Max: 100},
		},
		Current: nums(42, 35, 45, 62, 30, 28),
		Extreme: nums(65, 20, 20, 90, 15, 15),
	}
}

// EarningsOutlook returns 2025 reported and 2026 estimated quarterly EPS.
func EarningsOutlook() Earnings {
	return Earnings{
		Quarters:      []string{"Q1 2025", "Q2 2025", "Q3 2025", "Q4 2025", "Q1 2026E", "Q2 2026E", "Q3 2026E", "Q4 2026E"},
		EPS:           nums(57.2, 59.1, 60.8, 63.5, 65.2, 67.5, 69.0, 70.5),
		YoYGrowth:     nums(5.8, 10.2, 8.5, 13.2, 11.1, 14.9, 13.5, 11.0),
		FirstEstimate: 4,
	}
}

// Rates returns the fed funds rate and the index level half-yearly since 2022.
func Rates() FedRate {
	return FedRate{
		Labels: []string{"Jan 2022", "Jul 2022", "Jan 2023", "Jul 2023", "Jan 2024", "Jul 2024", "Jan 2025", "Jul 2025", "Jan 2026"},
		Rate:   nums(0.25, 2.5, 4.5, 5.25, 5.5, 5.5, 4.375, 4.375, 3.625),
		SP500:  nums(4516, 3785, 4077, 4589, 4770, 5522, 5881, 5700, 6836),
	}
}

// Outlooks returns the bear, base and bull year-end targets.
func Outlooks() Scenarios {
	return Scenarios{
		Cases: []Scenario{
			{Name: "Bear Case", Target: 4800, Tone: "red"},
			{Name: "Base Case", Target: 6400, Tone: "blue"},
			{Name: "Bull Case", Target: 7200, Tone: "green"},
		},
		Floor: 4000,
	}
}

// Cape returns starting CAPE against 10-year annualised returns.
func Cape() CapeReturns {
	return CapeReturns{
		Points: [][2]float64{
			{10, 14.2}, {12, 12.8}, {14, 11.1}, {16, 9.8},
			{18, 8.5}, {20, 7.2}, {22, 5.9}, {24, 4.8},
			{26, 3.7}, {28, 2.8}, {30, 2.1}, {32, 1.4},
			{34, 0.8}, {36, 0.2}, {38, -0.3},
			{40, -0.8}, {44, -1.5},
		},
		Current: [2]float64{39.7, -0.5},
	}
}

// Uncertainty returns the monthly EPU and GPR indices for 2025 into 2026.
func Uncertainty() Geopolitical {
	return Geopolitical{
		Labels: []string{"Jan 25", "Feb 25", "Mar 25", "Apr 25", "May 25", "Jun 25", "Jul 25",
			"Aug 25", "Sep 25", "Oct 25", "Nov 25", "Dec 25", "Jan 26", "Feb 26"},
		EPU: nums(280, 350, 320, 290, 260, 240, 250, 230, 245, 270, 310, 295, 340, 370),
		GPR: nums(160, 175, 165, 155, 150, 145, 140, 148, 155, 162, 170, 168, 180, 185),
	}
}

// Tails returns the tail-risk events.
func Tails() TailRisks {
	return TailRisks{
		Risks: []TailRisk{
			{Name: "China-Taiwan Invasion", Probability: 4, Impact: 35, Severity: 22, Tone: "red", Opacity: 0.6},
			{Name: "Pandemic Resurgence (H5N1)", Probability: 7.5, Impact: 25, Severity: 18, Tone: "orange", Opacity: 0.6},
			{Name: "US Debt / Treasury Crisis", Probability: 6.5, Impact: 25, Severity: 16, Tone: "orange", Opacity: 0.5},
			{Name: "AI Bubble Correction", Probability: 17.5, Impact: 20, Severity: 20, Tone: "purple", Opacity: 0.6},
			{Name: "CRE Crisis Escalation", Probability: 25, Impact: 10, Severity: 14, Tone: "orange", Opacity: 0.4},
			{Name: "Russia-NATO Conflict", Probability: 7.5, Impact: 15, Severity: 14, Tone: "red", Opacity: 0.5},
			{Name: "Cyber Attack (Financial)", Probability: 10, Impact: 10, Severity: 12, Tone: "teal", Opacity: 0.5},
			{Name: "Climate Catastrophe", Probability: 20, Impact: 9, Severity: 14, Tone: "green", Opacity: 0.4},
		},
		MaxProbability: 35,
		MaxImpact:      45,
	}
}

// CompositeRisk returns the composite risk score.
func CompositeRisk() RiskScore {
	return RiskScore{Name: "Composite Risk Score", Value: 72}
}

// MonthlySectors returns sector returns from September 2025 to February 2026.
func MonthlySectors() SectorHeatmap {
	return SectorHeatmap{
		Months:  []string{"Sep 2025", "Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026", "Feb 2026"},
		Sectors: strs(sectors),
		Returns: [][]float64{
			{-1.8, 0.4, -0.6, -2.1, -1.2, -0.9, -3.1, 0.8, 2.1, 1.5, -1.4},
			{2.4, 1.1, 3.2, 1.8, 2.1, 1.5, -0.8, 0.3, -0.5, -1.2, 0.6},
			{5.1, -0.3, 4.8, 3.9, 2.8, 3.2, 1.2, 1.4, -1.1, 0.8, 1.9},
			{-2.5, 1.8, -0.4, -3.2, -1.5, -1.8, 0.6, 0.2, 1.3, 0.5, -0.9},
			{3.1, 4.2, 2.8, 0.8, 1.9, 1.6, -2.1, 1.3, 3.8, 1.0, 0.4},
			{1.1, 2.3, 2.0, -2.0, 1.2, 1.2, -1.3, 0.8, 1.5, 0.2, -1.2},
		},
	}
}
