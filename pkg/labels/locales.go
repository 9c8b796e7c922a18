package labels

import "github.com/goliatone/go-memorymap/pkg/record"

// Japanese is the default catalog.
func Japanese() Catalog {
	return Catalog{
		Locale: "ja",
		StepTitles: [6]string{
			"個人情報の取り扱い",
			"基本情報",
			"地図の範囲",
			"詳細エリア",
			"思い出の場所",
			"確認・送信",
		},
		StepMessages: [6]string{
			"個人情報の取り扱いに同意していただく必要があります",
			"入学年度と所属学部・学科は必須項目です",
			"地図の種類を選択してください",
			"エリアを選択してください",
			"場所の名前、思い出の内容、住所・座標情報は必須項目です",
			"Webサイトへの掲載同意が必要です",
		},
		AreaPrefectureMessage: "都道府県を選択してください",
		AreaRegionMessage:     "地域を選択してください",
		MapTypes: map[record.MapType]string{
			record.MapTypeCampus: "キャンパス周辺",
			record.MapTypeJapan:  "日本全国",
			record.MapTypeWorld:  "全世界",
		},
		CampusArea: "キャンパス周辺",
		Prefectures: []string{
			"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
			"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
			"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県",
			"静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県",
			"奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県",
			"徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県",
			"熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
		},
		Regions: []Region{
			{Key: "asia", Label: "アジア"},
			{Key: "europe", Label: "ヨーロッパ"},
			{Key: "africa", Label: "アフリカ"},
			{Key: "oceania", Label: "オセアニア"},
			{Key: "north-america", Label: "北米"},
			{Key: "south-america", Label: "南米"},
		},
		Anonymous:       "匿名",
		Missing:         "-",
		YearFormat:      "%s年度",
		PhotoNone:       "未添付",
		PhraseMissing:   "未入力",
		SubmitInvalid:   "入力内容に不備があります",
		SubmitFailed:    "送信に失敗しました。もう一度お試しください。",
		UnexpectedError: "エラーが発生しました。ページを再読み込みして再度お試しください。",
		PhotoTooLarge:   "ファイルサイズが大きすぎます（最大5MB）",
		PhotoNotImage:   "画像ファイルを選択してください",
		UnknownPlace:    "名称不明",
		AgreementYes:    "はい。同意します。",
		AgreementNo:     "いいえ、同意しません。",
		WirePhotoNone:   "写真なし",
		WirePhotoURL:    "URL: ",
		WirePhotoFile:   "ファイル: ",
		WirePhrase:      "役立つフレーズ: ",
		TimestampLayout: "2006/1/2 15:04:05",
		CSVHeader:       [2]string{"項目", "値"},
		CSVSubmittedAt:  "投稿日時",
		CSVMapType:      "地図種別",
		CSVArea:         "エリア",
		CSVPlaceName:    "場所名",
		CSVLocation:     "座標",
		CSVMemory:       "説明・思い出",
		CSVPhotoURL:     "写真URL",
		CSVSubmitter:    "投稿者名",
		Prompts: Prompts{
			PrivacyAgreement: "個人情報の取り扱いに同意しますか？",
			Name:             "お名前（任意）",
			AdmissionYear:    "入学年度",
			Department:       "学部・学科",
			MapType:          "地図の種類",
			Prefecture:       "都道府県",
			Region:           "地域",
			PlaceName:        "場所の名前",
			MemoryContent:    "思い出の内容",
			LocationInfo:     "住所・座標情報",
			PhotoType:        "写真の添付方法",
			PhotoTypes: map[record.PhotoType]string{
				record.PhotoTypeFile: "ファイルをアップロード",
				record.PhotoTypeURL:  "URLを入力",
			},
			PhotoFile:    "写真ファイルのパス（空欄で添付なし）",
			PhotoURL:     "写真のURL（任意）",
			UsefulPhrase: "現地で役立つフレーズ（任意）",
			Agreement:    "Webサイトへの掲載に同意しますか？",
			Navigate:     "操作を選択してください",
			Next:         "次へ",
			Back:         "戻る",
			Submit:       "送信する",
			ExportCSV:    "CSVに保存",
			Quit:         "終了",
			Sending:      "送信中...",
			Thanks:       "投稿ありがとうございました！",
			Exported:     "CSVを保存しました: ",
			FileUnread:   "ファイルを読み込めませんでした",
		},
	}
}

// English mirrors Japanese with English strings. Prefectures and regions are
// romanized so stored areas stay readable.
func English() Catalog {
	return Catalog{
		Locale: "en",
		StepTitles: [6]string{
			"Privacy",
			"Basic info",
			"Map",
			"Area",
			"Your place",
			"Review & submit",
		},
		StepMessages: [6]string{
			"You must agree to the handling of personal information",
			"Admission year and department are required",
			"Choose a map type",
			"Choose an area",
			"Place name, memory and location are required",
			"You must agree to publication on the website",
		},
		AreaPrefectureMessage: "Choose a prefecture",
		AreaRegionMessage:     "Choose a region",
		MapTypes: map[record.MapType]string{
			record.MapTypeCampus: "Around campus",
			record.MapTypeJapan:  "Japan",
			record.MapTypeWorld:  "World",
		},
		CampusArea: "Around campus",
		Prefectures: []string{
			"Hokkaido", "Aomori", "Iwate", "Miyagi", "Akita", "Yamagata", "Fukushima",
			"Ibaraki", "Tochigi", "Gunma", "Saitama", "Chiba", "Tokyo", "Kanagawa",
			"Niigata", "Toyama", "Ishikawa", "Fukui", "Yamanashi", "Nagano", "Gifu",
			"Shizuoka", "Aichi", "Mie", "Shiga", "Kyoto", "Osaka", "Hyogo",
			"Nara", "Wakayama", "Tottori", "Shimane", "Okayama", "Hiroshima", "Yamaguchi",
			"Tokushima", "Kagawa", "Ehime", "Kochi", "Fukuoka", "Saga", "Nagasaki",
			"Kumamoto", "Oita", "Miyazaki", "Kagoshima", "Okinawa",
		},
		Regions: []Region{
			{Key: "asia", Label: "Asia"},
			{Key: "europe", Label: "Europe"},
			{Key: "africa", Label: "Africa"},
			{Key: "oceania", Label: "Oceania"},
			{Key: "north-america", Label: "North America"},
			{Key: "south-america", Label: "South America"},
		},
		Anonymous:       "Anonymous",
		Missing:         "-",
		YearFormat:      "%s",
		PhotoNone:       "None",
		PhraseMissing:   "Not entered",
		SubmitInvalid:   "Some entries are incomplete",
		SubmitFailed:    "Submission failed. Please try again.",
		UnexpectedError: "Something went wrong. Please try again.",
		PhotoTooLarge:   "File is too large (max 5MB)",
		PhotoNotImage:   "Please choose an image file",
		UnknownPlace:    "Unknown",
		AgreementYes:    "Yes, I agree.",
		AgreementNo:     "No, I do not agree.",
		WirePhotoNone:   "No photo",
		WirePhotoURL:    "URL: ",
		WirePhotoFile:   "File: ",
		WirePhrase:      "Useful phrase: ",
		TimestampLayout: "2006-01-02 15:04:05",
		CSVHeader:       [2]string{"Item", "Value"},
		CSVSubmittedAt:  "Submitted at",
		CSVMapType:      "Map type",
		CSVArea:         "Area",
		CSVPlaceName:    "Place name",
		CSVLocation:     "Location",
		CSVMemory:       "Memory",
		CSVPhotoURL:     "Photo URL",
		CSVSubmitter:    "Submitter",
		Prompts: Prompts{
			PrivacyAgreement: "Do you agree to the handling of personal information?",
			Name:             "Name (optional)",
			AdmissionYear:    "Admission year",
			Department:       "Department",
			MapType:          "Map type",
			Prefecture:       "Prefecture",
			Region:           "Region",
			PlaceName:        "Place name",
			MemoryContent:    "Your memory",
			LocationInfo:     "Address or coordinates",
			PhotoType:        "Attach a photo by",
			PhotoTypes: map[record.PhotoType]string{
				record.PhotoTypeFile: "Uploading a file",
				record.PhotoTypeURL:  "Entering a URL",
			},
			PhotoFile:    "Photo file path (blank for none)",
			PhotoURL:     "Photo URL (optional)",
			UsefulPhrase: "A useful local phrase (optional)",
			Agreement:    "Do you agree to publication on the website?",
			Navigate:     "What next?",
			Next:         "Next",
			Back:         "Back",
			Submit:       "Submit",
			ExportCSV:    "Save as CSV",
			Quit:         "Quit",
			Sending:      "Sending...",
			Thanks:       "Thank you for your submission!",
			Exported:     "CSV saved: ",
			FileUnread:   "The file could not be read",
		},
	}
}
