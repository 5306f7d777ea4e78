package i18n

// Chart-facing keys. Section headings are keyed by section index.
const (
	KeyPageTitle     = "page.title"
	KeyPageTabTitle  = "page.tab_title"
	KeyPageCaption   = "page.caption"
	KeyPageNotice    = "page.notice"
	KeyAxisX         = "axis.x"
	KeyAxisY         = "axis.y"
	KeyAxisValue     = "axis.value"
	KeyAxisFrequency = "axis.frequency"
	KeyTrendLine     = "legend.trend"
)

var catalogs = map[string]map[string]string{
	LocaleKorean: {
		KeyPageTitle:    "📊 그래프 시각화",
		KeyPageTabTitle: "그래프 시각화",
		KeyPageCaption:  "gonum/plot을 활용한 다양한 그래프 예시",
		KeyPageNotice:   "Tip: 이 페이지는 gonum/plot을 활용한 다양한 그래프 시각화 예시입니다.",

		"section.1": "1️⃣ 선 그래프",
		"section.2": "2️⃣ 막대 그래프",
		"section.3": "3️⃣ 산점도",
		"section.4": "4️⃣ 히스토그램",
		"section.5": "5️⃣ 파이 차트",
		"section.6": "6️⃣ 박스플롯",

		KeyAxisX:         "X 축",
		KeyAxisY:         "Y 축",
		KeyAxisValue:     "값",
		KeyAxisFrequency: "빈도",
		KeyTrendLine:     "추세선",

		"chart.line-sin.title":         "sin 함수 그래프",
		"chart.line-sin-cos.title":     "sin과 cos 함수 비교",
		"chart.bar-categories.title":   "카테고리별 데이터 비교",
		"chart.scatter-random.title":   "무작위 데이터 산점도",
		"chart.scatter-trend.title":    "선형 추세 분석",
		"chart.hist-normal.title":      "정규분포 데이터 히스토그램",
		"chart.pie-composition.title":  "전체 구성 비율",
		"chart.pie-transactions.title": "거래 현황",
		"chart.box-groups.title":       "그룹별 데이터 분포",

		"bar.category": "데이터{0}",
		"pie.item":     "항목{0}",
		"pie.purchase": "구매",
		"pie.refund":   "환불",
		"pie.return":   "반품",
		"pie.other":    "기타",
		"box.group":    "그룹{0}",
	},
	LocaleEnglish: {
		KeyPageTitle:    "📊 Chart Gallery",
		KeyPageTabTitle: "Chart Gallery",
		KeyPageCaption:  "A collection of chart examples drawn with gonum/plot",
		KeyPageNotice:   "Tip: this page is a gallery of chart examples drawn with gonum/plot.",

		"section.1": "1️⃣ Line chart",
		"section.2": "2️⃣ Bar chart",
		"section.3": "3️⃣ Scatter plot",
		"section.4": "4️⃣ Histogram",
		"section.5": "5️⃣ Pie chart",
		"section.6": "6️⃣ Box plot",

		KeyAxisX:         "X axis",
		KeyAxisY:         "Y axis",
		KeyAxisValue:     "Value",
		KeyAxisFrequency: "Frequency",
		KeyTrendLine:     "Trend",

		"chart.line-sin.title":         "sin(x)",
		"chart.line-sin-cos.title":     "sin vs. cos",
		"chart.bar-categories.title":   "Values by category",
		"chart.scatter-random.title":   "Random scatter",
		"chart.scatter-trend.title":    "Linear trend",
		"chart.hist-normal.title":      "Normally distributed sample",
		"chart.pie-composition.title":  "Composition",
		"chart.pie-transactions.title": "Transactions",
		"chart.box-groups.title":       "Distribution by group",

		"bar.category": "Data {0}",
		"pie.item":     "Item {0}",
		"pie.purchase": "Purchase",
		"pie.refund":   "Refund",
		"pie.return":   "Return",
		"pie.other":    "Other",
		"box.group":    "Group {0}",
	},
}
