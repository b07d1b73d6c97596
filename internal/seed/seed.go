// Package seed holds the initial fixtures the planner starts from when no
// saved snapshot exists: the drafted itinerary, the food wheel entries, the
// default exchange rate, and the fixed flight/lodging facts.
package seed

import "github.com/lomkinju/qienn/internal/models"

// ExchangeRate is the default JPY→TWD multiplier.
const ExchangeRate = 0.215

// Flights are the booked legs.
func Flights() []models.FlightDetails {
	return []models.FlightDetails{
		{Direction: "Departure", Date: "2/9 (一)", Time: "06:40 → 10:40", AirportCode: "TPE → NRT", City: "台北 → 東京"},
		{Direction: "Return", Date: "2/16 (一)", Time: "19:55 → 23:10", AirportCode: "NRT → TPE", City: "東京 → 台北"},
	}
}

// Accommodation is the lodging booking.
func Accommodation() models.AccommodationDetails {
	return models.AccommodationDetails{
		Name:     "北千住 (Kita-Senju) 民宿",
		Location: "北千住車站附近",
		Period:   "2/9 (一) 至 2/16 (一)",
		Nights:   7,
	}
}

// TripCosts are the fixed pre-trip costs in TWD.
func TripCosts() models.Costs {
	return models.Costs{
		FlightTotal:            76530,
		FlightPerPerson:        12755,
		AccommodationTotal:     34087,
		AccommodationPerPerson: 5681,
	}
}

// DepartureDate is the trip start, used for the countdown.
const DepartureDate = "2026-02-09T06:40:00+08:00"

// FoodList is the initial wheel content.
func FoodList() []string {
	return []string{
		"燒肉", "壽司", "迴轉壽司", "拉麵", "蕎麥麵", "烏龍麵",
		"咖哩飯", "炸豬排", "湯咖哩", "鰻魚飯", "壽喜燒", "涮涮鍋", "關東煮",
		"章魚燒", "炒麵", "定食", "家庭餐廳",
	}
}

// Expenses is the initial ledger content (empty; the trip has not started).
func Expenses() []models.ExpenseRecord {
	return []models.ExpenseRecord{}
}

// Itinerary is the drafted day-by-day plan.
func Itinerary() []models.DayPlan {
	return []models.DayPlan{
		{
			DayLabel: "D1", Date: "2/9 (一)", Theme: "抵達、淺草古都巡禮", ThemeIcon: "🏯", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "d1-1", Time: "10:40", Activity: "抵達東京成田機場 (NRT)", Detail: "辦理入境手續。建議事先查好 Terminal/Gate 資訊。"},
				{ID: "d1-2", Time: "11:30", Activity: "NRT 搭乘 Skyliner", Detail: "前往日暮里。購買 Skyliner 來回票通常比單程划算。"},
				{ID: "d1-3", Time: "12:30", Activity: "日暮里附近中餐", Detail: "轉盤決定"},
				{ID: "d1-4", Time: "14:30", Activity: "淺草地區", Detail: "淺草寺、雷門、淺草商店街。"},
				{ID: "d1-5", Time: "14:30", Activity: "晴空塔室內購物", Detail: "雨天備案:若下雨可直接前往晴空塔水族館與購物中心。", IsBackup: true},
				{ID: "d1-6", Time: "17:00", Activity: "晴空塔", Detail: "決定是否參觀水族館,或直接上展望台。"},
				{ID: "d1-7", Time: "18:30", Activity: "晚餐", Detail: "轉盤決定"},
				{ID: "d1-8", Time: "21:00", Activity: "前往北千住住所", Detail: "Check-in。確認 Wi-Fi 和暖氣運作正常。"},
				{ID: "d1-9", Time: "22:00", Activity: "唐吉訶德/住所周邊", Detail: "買宵夜、補給品。"},
			},
		},
		{
			DayLabel: "D2", Date: "2/10 (二)", Theme: "上野文化、銀座時尚、東京鐵塔", ThemeIcon: "🗼", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "d2-1", Time: "09:30", Activity: "上野車站早餐", Detail: "9:30 出門"},
				{ID: "d2-2", Time: "10:30", Activity: "上野動物園", Detail: "熊貓觀看可能需要排隊或預約。"},
				{ID: "d2-3", Time: "12:30", Activity: "阿美橫町午餐", Detail: "有很多便宜的海鮮丼和小吃可選。"},
				{ID: "d2-4", Time: "14:30", Activity: "東京車站", Detail: "丸之內紅磚建築、Tokyo Character Street。"},
				{ID: "d2-5", Time: "16:00", Activity: "銀座", Detail: "逛街。"},
				{ID: "d2-6", Time: "16:00", Activity: "有樂町 Big Camera / MUJI", Detail: "備案:若不想逛精品,可轉往有樂町旗艦店。", IsBackup: true},
				{ID: "d2-7", Time: "18:00", Activity: "東京鐵塔", Detail: "準備上展望台或在外圍拍照。"},
				{ID: "d2-8", Time: "19:30", Activity: "晚餐", Detail: "燒肉"},
				{ID: "d2-9", Time: "21:30", Activity: "回家", Detail: "便利商店買消夜"},
			},
		},
		{
			DayLabel: "D3", Date: "2/11 (三)", Theme: "次文化動漫、新宿夜生活", ThemeIcon: "🛍️", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "d3-1", Time: "10:30", Activity: "前往池袋車站", Detail: "10:30 出門"},
				{ID: "d3-2", Time: "11:00", Activity: "池袋景點", Detail: "Animate、JUMP Shop。"},
				{ID: "d3-3", Time: "11:00", Activity: "Sunshine City (太陽城)", Detail: "雨天首選備案:包含水族館、寶可夢中心、室內樂園。", IsBackup: true},
				{ID: "d3-4", Time: "13:00", Activity: "池袋午餐", Detail: "壽喜燒 (Sukiyaki)"},
				{ID: "d3-5", Time: "15:00", Activity: "新大久保", Detail: "逛小物、小吃,體驗東京的韓國城氛圍。"},
				{ID: "d3-6", Time: "18:30", Activity: "新宿", Detail: "歌舞伎町、東口商圈、UNIQLO、Bic Camera。"},
				{ID: "d3-7", Time: "20:00", Activity: "晚餐", Detail: "推薦:拉麵或居酒屋。"},
				{ID: "d3-8", Time: "22:30", Activity: "回家", Detail: "若時間充裕,可考慮東京都廳拍免費夜景。"},
			},
		},
		{
			DayLabel: "D4", Date: "2/12 (四)", Theme: "原宿潮流、Shibuya Sky", ThemeIcon: "⛩️", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "d4-1", Time: "10:00", Activity: "原宿早餐", Detail: "10:00 出門。推薦:竹下通可麗餅。"},
				{ID: "d4-2", Time: "11:00", Activity: "竹下通", Detail: "購物買衣服,感受年輕潮流氣息。"},
				{ID: "d4-3", Time: "12:30", Activity: "表參道", Detail: "散步拍照,欣賞精品建築。"},
				{ID: "d4-4", Time: "13:30", Activity: "明治神宮", Detail: "從原宿口進入,預留至少 1.5 小時。"},
				{ID: "d4-5", Time: "15:00", Activity: "澀谷午餐", Detail: ""},
				{ID: "d4-6", Time: "16:00", Activity: "澀谷商圈", Detail: "大購物、拍攝十字路口。"},
				{ID: "d4-7", Time: "18:00", Activity: "Shibuya Sky", Detail: "需提前預訂門票,建議日落時段。"},
				{ID: "d4-8", Time: "20:00", Activity: "晚餐", Detail: "轉盤決定"},
			},
		},
		{
			DayLabel: "D5", Date: "2/13 (五)", Theme: "橫濱一日遊 (轉盤版)", ThemeIcon: "🎡", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "d5-1", Time: "09:00", Activity: "起床、早餐", Detail: ""},
				{ID: "d5-2", Time: "10:00", Activity: "出發前往橫濱", Detail: "搭乘電車前往。"},
				{ID: "d5-3", Time: "10:40", Activity: "橫濱紅磚倉庫", Detail: "拍照、逛特色小店。"},
				{ID: "d5-4", Time: "12:30", Activity: "橫濱中華街午餐", Detail: "小籠包、炒麵、點心。"},
				{ID: "d5-5", Time: "14:00", Activity: "山下公園", Detail: "散步、拍港灣風景。"},
				{ID: "d5-6", Time: "15:30", Activity: "合味道紀念館", Detail: "Cup Noodles Museum。DIY杯麵、拍照、玩互動展。"},
				{ID: "d5-7", Time: "18:30", Activity: "晚餐", Detail: "轉盤決定(港未來周邊餐廳隨機挑,日式/義式/海鮮)。"},
				{ID: "d5-8", Time: "20:00", Activity: "搭車回東京", Detail: ""},
				{ID: "d5-9", Time: "21:00", Activity: "回住所、休息", Detail: ""},
			},
		},
		{
			DayLabel: "D6", Date: "2/14 (六)", Theme: "中野秋葉原爆買、原宿泡湯", ThemeIcon: "🧖", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "d6-1", Time: "09:00", Activity: "起床、早餐", Detail: "住所附近簡單吃。"},
				{ID: "d6-2", Time: "10:00", Activity: "中野 Nakano Broadway", Detail: "動漫周邊、手辦、收藏品、小玩具爆買。"},
				{ID: "d6-3", Time: "12:00", Activity: "中野午餐", Detail: "中野附近餐廳,轉盤決定。"},
				{ID: "d6-4", Time: "13:00", Activity: "秋葉原", Detail: "Animate、JUMP Shop、電器街、動漫周邊狂掃。"},
				{ID: "d6-5", Time: "15:30", Activity: "KOSUGIYU HARAJUKU", Detail: "泡湯放鬆、休息、拍照打卡。"},
				{ID: "d6-6", Time: "17:30", Activity: "居酒屋晚餐", Detail: "喝小酒、吃日式下酒菜。"},
				{ID: "d6-7", Time: "19:30", Activity: "回住所", Detail: "休息。"},
			},
		},
		{
			DayLabel: "D7", Date: "2/15 (日)", Theme: "下北澤文青、古著、湯咖哩", ThemeIcon: "🎸", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "d7-1", Time: "09:00", Activity: "起床、早餐", Detail: "面對明天要回國的現實。"},
				{ID: "d7-2", Time: "10:30", Activity: "出發前往下北澤", Detail: "約 50 分鐘車程。"},
				{ID: "d7-3", Time: "11:30", Activity: "湯咖哩排隊 (如: SAMURAI)", Detail: "很有名,建議先抽號碼牌。"},
				{ID: "d7-4", Time: "13:00", Activity: "午餐:湯咖哩", Detail: "清單上的重點美食。"},
				{ID: "d7-5", Time: "14:30", Activity: "古著巡禮", Detail: "在巷弄中挖掘古著。"},
				{ID: "d7-6", Time: "14:30", Activity: "代官山 / 惠比壽", Detail: "備案:若不喜歡古著,可轉往代官山散步。", IsBackup: true},
				{ID: "d7-7", Time: "16:00", Activity: "天馬咖哩麵包", Detail: "必買的小吃,邊走邊吃。"},
				{ID: "d7-8", Time: "17:30", Activity: "手沖咖啡休憩", Detail: "下北澤有許多特色獨立咖啡廳。"},
				{ID: "d7-9", Time: "19:00", Activity: "最後晚餐", Detail: "順眼的炸豬排或定食。"},
				{ID: "d7-10", Time: "21:00", Activity: "回住所、最後整理", Detail: "確認行李沒超重。"},
			},
		},
		{
			DayLabel: "D8", Date: "2/16 (一)", Theme: "離境日", ThemeIcon: "🛫", Status: models.StatusPlanned,
			Items: []models.ItineraryItem{
				{ID: "d8-1", Time: "上午", Activity: "整理行李、Check-out", Detail: "檢查有無遺落物品。"},
				{ID: "d8-2", Time: "12:00", Activity: "最終午餐/採購", Detail: "建議在北千住車站周邊完成最後補貨。"},
				{ID: "d8-3", Time: "16:00", Activity: "前往成田機場 (NRT)", Detail: "預留充裕時間。"},
				{ID: "d8-4", Time: "19:55", Activity: "酷航 TR875 班機", Detail: "東京 (NRT) → 台北 (TPE)"},
			},
		},
	}
}
