package model

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedDeposits возвращает демонстрационный набор вкладов.
// В реальной системе данные приходили бы из внешнего леджера.
func SeedDeposits() []Deposit {
	return []Deposit{
		{
			ID:               "flex",
			Name:             "Накопительный FLEX",
			Balance:          dec("3200"),
			Rate:             dec("7.5"),
			TermMonths:       12,
			MonthsPassed:     5,
			InterestAccrued:  dec("132"),
			MonthlyTopUp:     dec("200"),
			NextPayoutInDays: 12,
			NextPayoutAmount: dec("18.75"),
			Capitalisation:   true,
			Replenishment:    true,
		},
		{
			ID:               "travel",
			Name:             "Цель: Путешествие",
			Balance:          dec("1850"),
			Rate:             dec("8.2"),
			TermMonths:       9,
			MonthsPassed:     3,
			InterestAccrued:  dec("79"),
			MonthlyTopUp:     dec("150"),
			NextPayoutInDays: 5,
			NextPayoutAmount: dec("12.62"),
			Capitalisation:   true,
			Replenishment:    true,
		},
		{
			ID:               "reserve",
			Name:             "Резервный фонд",
			Balance:          dec("950"),
			Rate:             dec("6.0"),
			TermMonths:       6,
			MonthsPassed:     4,
			InterestAccrued:  dec("28"),
			MonthlyTopUp:     dec("0"),
			NextPayoutInDays: 20,
			NextPayoutAmount: dec("4.75"),
			Capitalisation:   false,
			Replenishment:    false,
		},
	}
}

// SeedAnalytics возвращает демонстрационный снимок аналитики расходов.
func SeedAnalytics() Analytics {
	return Analytics{
		Budget:        dec("1800"),
		TotalSpent:    dec("1425"),
		SavingsAmount: dec("375"),
		SavingsRate:   21,
		Categories: []SpendingCategory{
			{ID: "food", Name: "Продукты", Amount: dec("420"), Percent: 29, Color: "#2563eb"},
			{ID: "transport", Name: "Транспорт", Amount: dec("180"), Percent: 13, Color: "#f97316"},
			{ID: "entertainment", Name: "Развлечения", Amount: dec("240"), Percent: 17, Color: "#10b981"},
			{ID: "shopping", Name: "Шопинг", Amount: dec("310"), Percent: 22, Color: "#8b5cf6"},
			{ID: "other", Name: "Другое", Amount: dec("275"), Percent: 19, Color: "#64748b"},
		},
		WeeklyTrend: []WeeklyTrendPoint{
			{Week: "1-7", Current: dec("320"), Previous: dec("280")},
			{Week: "8-14", Current: dec("360"), Previous: dec("310")},
			{Week: "15-21", Current: dec("295"), Previous: dec("330")},
			{Week: "22-28", Current: dec("450"), Previous: dec("390")},
		},
		Subscriptions: []Subscription{
			{Name: "Видеосервис", Amount: dec("12.99"), Renewal: "15 числа"},
			{Name: "Музыка", Amount: dec("7.49"), Renewal: "2 числа"},
			{Name: "Спортзал", Amount: dec("35.00"), Renewal: "25 числа"},
		},
		Recommendations: []string{
			"Попробуйте устанавливать недельные лимиты на доставку еды, чтобы удерживать план расходов.",
			"Добавьте автоматическое пополнение вклада при каждом поступлении зарплаты.",
			"Пересмотрите подписку на спортзал — при оплате на год вперед стоимость снизится на 15%.",
		},
	}
}
