// Package refdata holds the fixed reference catalogs the planner serves
// read-only: the packing catalog, useful links, the phrase list, and the
// (static, estimated) weather table. None of it is part of the saved
// snapshot.
package refdata

import "net/url"

// PackingCategory is one section of the packing checklist catalog.
type PackingCategory struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// PackingCatalog returns the categorized packing checklist. Packed flags are
// keyed by these item strings.
func PackingCatalog() []PackingCategory {
	return []PackingCategory{
		{ID: "essentials", Title: "🪪 證件財物", Items: []string{
			"護照 (正本 + 影本)", "日幣現金 (分開存放)", "信用卡 x2 (海外回饋高)",
			"西瓜卡 (Suica/Pasmo)", "網卡 / Roaming 設定", "Visit Japan Web QR Code",
			"原子筆 (填寫表單用)", "錢包 (零錢包)",
		}},
		{ID: "electronics", Title: "🔌 電子產品", Items: []string{
			"手機 & 充電線", "行動電源 (需隨身行李)", "轉接頭 (日本雙孔)",
			"相機/GoPro/記憶卡", "耳機 (抗噪推薦)", "Sim 卡針", "延長線/多孔充電器", "自拍棒/腳架",
		}},
		{ID: "clothing", Title: "🧥 衣物 (2月)", Items: []string{
			"發熱衣 x3", "毛衣/帽T", "厚外套/羽絨衣", "圍巾/毛帽/手套",
			"好走的鞋子 (備用鞋?)", "睡衣", "內衣褲/襪子 (多帶)", "太陽眼鏡", "飾品/手錶",
		}},
		{ID: "toiletries", Title: "🧴 盥洗與藥品", Items: []string{
			"牙刷牙膏 (環保)", "洗面乳/保養品 (加強保濕)", "常備藥 (感冒/腸胃/止痛)",
			"OK繃/休足時間", "口罩", "洗衣袋",
		}},
	}
}

// CatalogItemCount is the denominator for packing progress.
func CatalogItemCount() int {
	n := 0
	for _, c := range PackingCatalog() {
		n += len(c.Items)
	}
	return n
}

// Link is one entry of the useful-links card.
type Link struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
	URL  string `json:"url"`
}

// Links returns the useful-links catalog.
func Links() []Link {
	return []Link{
		{Name: "Visit Japan Web", Desc: "入境檢疫、海關申報", URL: "https://vjw-lp.digital.go.jp/zh-hant/"},
		{Name: "Google Maps", Desc: "東京地圖與導航", URL: "https://goo.gl/maps/tokyo"},
		{Name: "乘換案內 (Jorudan)", Desc: "電車轉乘查詢", URL: "https://world.jorudan.co.jp/mln/zh-tw/"},
		{Name: "匯率試算", Desc: "JPY / TWD 即時匯率", URL: "https://rate.bot.com.tw/xrt?Lang=zh-TW"},
	}
}

// MapSearchURL builds a map-service search URL for a free-text location.
func MapSearchURL(location string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(location)
}

// Phrase is one phrase card entry.
type Phrase struct {
	Japanese string `json:"japanese"`
	Romaji   string `json:"romaji"`
	Meaning  string `json:"meaning"`
	Category string `json:"category"`
}

// Phrases returns the phrase-card catalog.
func Phrases() []Phrase {
	return []Phrase{
		{Japanese: "すみません", Romaji: "Sumimasen", Meaning: "不好意思 / 請問...", Category: "基礎"},
		{Japanese: "これをお願いします", Romaji: "Kore o onegaishimasu", Meaning: "我要這個 (點餐/購物)", Category: "購物"},
		{Japanese: "トイレはどこですか?", Romaji: "Toire wa doko desu ka?", Meaning: "請問廁所在哪裡?", Category: "問路"},
		{Japanese: "免税できますか?", Romaji: "Menzei dekimasu ka?", Meaning: "可以退稅嗎?", Category: "購物"},
		{Japanese: "お会計をお願いします", Romaji: "Okaikei o onegaishimasu", Meaning: "麻煩結帳", Category: "餐廳"},
		{Japanese: "おすすめは何ですか?", Romaji: "Osusume wa nan desu ka?", Meaning: "有什麼推薦的嗎?", Category: "餐廳"},
		{Japanese: "クレジットカードは使えますか?", Romaji: "Kurejitto kādo wa tsukaemasu ka?", Meaning: "可以使用信用卡嗎?", Category: "付款"},
		{Japanese: "写真を撮ってもいいですか?", Romaji: "Shashin o totte mo ii desu ka?", Meaning: "可以拍照嗎?", Category: "觀光"},
	}
}

// DailyWeather is one row of the static forecast estimate (Tokyo February
// averages, not live data).
type DailyWeather struct {
	Date         string `json:"date"`
	Day          string `json:"day"`
	TempHigh     int    `json:"tempHigh"`
	TempLow      int    `json:"tempLow"`
	Condition    string `json:"condition"` // Sunny, Cloudy, Rain, Snow
	PrecipChance int    `json:"precipChance"`
}

// Forecast returns the static weather table.
func Forecast() []DailyWeather {
	return []DailyWeather{
		{Date: "2/9", Day: "Mon", TempHigh: 11, TempLow: 3, Condition: "Sunny", PrecipChance: 0},
		{Date: "2/10", Day: "Tue", TempHigh: 10, TempLow: 4, Condition: "Cloudy", PrecipChance: 20},
		{Date: "2/11", Day: "Wed", TempHigh: 8, TempLow: 2, Condition: "Rain", PrecipChance: 80},
		{Date: "2/12", Day: "Thu", TempHigh: 12, TempLow: 4, Condition: "Sunny", PrecipChance: 10},
		{Date: "2/13", Day: "Fri", TempHigh: 9, TempLow: 3, Condition: "Cloudy", PrecipChance: 30},
		{Date: "2/14", Day: "Sat", TempHigh: 13, TempLow: 5, Condition: "Sunny", PrecipChance: 0},
		{Date: "2/15", Day: "Sun", TempHigh: 7, TempLow: 1, Condition: "Snow", PrecipChance: 60},
		{Date: "2/16", Day: "Mon", TempHigh: 10, TempLow: 3, Condition: "Sunny", PrecipChance: 10},
	}
}
