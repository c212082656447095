package generator

// clozeTemplates holds per-category sentence templates with one blank.
var clozeTemplates = map[string][]clozeTemplate{
	"manners": {
		{text: "___，老師！", exclude: []string{"老", "師", "對唔住", "唔好意思", "多謝", "唔該", "請", "拜拜"}},
		{text: "___，媽媽！", exclude: []string{"媽", "對唔住", "唔好意思", "多謝", "唔該", "請", "拜拜"}},
		{text: "___，聽日見！", exclude: []string{"聽", "日", "見", "早晨", "晚安", "對唔住", "唔好意思", "多謝", "唔該", "請"}},
		{text: "___你幫我！", exclude: []string{"你", "幫", "我", "早晨", "晚安", "拜拜", "對唔住", "唔好意思", "唔該", "請"}},
		{text: "___，可以幫我嗎？", exclude: []string{"可", "以", "幫", "我", "嗎", "早晨", "晚安", "拜拜", "對唔住", "唔好意思", "多謝", "請"}},
		{text: "___坐低。", exclude: []string{"坐", "低", "早晨", "晚安", "拜拜", "對唔住", "唔好意思", "多謝", "唔該"}},
		{text: "___，我遲到咗。", exclude: []string{"我", "遲", "到", "咗", "早晨", "晚安", "拜拜", "多謝", "唔該", "請"}},
		{text: "___，我唔係故意。", exclude: []string{"我", "唔", "係", "故", "意", "早晨", "晚安", "拜拜", "多謝", "唔該", "請"}},
	},
	"numbers": {
		{text: "我有___個蘋果。", exclude: []string{"一", "個", "有", "二"}},
		{text: "佢有___隻狗。", exclude: []string{"隻", "有", "二"}},
		{text: "呢度有___個人。", exclude: []string{"個", "有", "二"}},
		{text: "___加一等於幾多？", exclude: []string{"一", "加", "等"}},
		{text: "___乘二等於幾多？", exclude: []string{"乘", "二", "等"}},
	},
	"animals": {
		{text: "我有一隻___。", exclude: []string{"一", "隻", "有", "蛇", "魚", "龍", "鯊魚", "鯨魚", "海豚", "海星", "蟹", "蝦", "大象", "獅子", "老虎", "熊", "猴子", "企鵝", "長頸鹿", "斑馬", "豬", "牛", "羊", "馬"}},
		{text: "呢隻係___。", exclude: []string{"呢", "隻", "係", "蛇", "魚", "龍", "鯊魚", "鯨魚", "海豚", "海星"}},
		{text: "我鍾意___。", exclude: []string{"鍾", "意"}},
		{text: "動物園有___。", exclude: []string{"有", "貓", "狗", "雞", "鴨", "豬", "牛", "羊", "馬", "魚", "龍", "鯊魚", "鯨魚", "海豚", "海星", "蟹", "蝦", "蝸牛", "蝴蝶", "蜜蜂", "螞蟻", "蜘蛛"}},
	},
	"foods": {
		{text: "我想食___。", exclude: []string{"想", "食"}},
		{text: "我鍾意食___。", exclude: []string{"鍾", "意", "食"}},
		{text: "呢個係___。", exclude: []string{"呢", "個", "係"}},
		{text: "我食緊___。", exclude: []string{"食", "緊"}},
	},
	"colors": {
		{text: "蘋果係___。", exclude: []string{"係", "藍色", "紫色", "粉紅色", "黑色", "白色", "灰色", "啡色", "金色", "銀色"}},
		{text: "天空係___。", exclude: []string{"係", "紅色", "黃色", "綠色", "橙色", "紫色", "粉紅色", "黑色", "白色", "灰色", "啡色", "金色", "銀色"}},
		{text: "呢朵花係___。", exclude: []string{"呢", "朵", "花", "係", "灰色", "金色", "銀色"}},
		{text: "我鍾意___。", exclude: []string{"鍾", "意"}},
		{text: "呢個係___。", exclude: []string{"呢", "個", "係"}},
	},
	"weather": {
		{text: "今日___。", exclude: []string{"今", "日"}},
		{text: "出面___。", exclude: []string{"出", "面"}},
		{text: "天氣好___。", exclude: []string{"天", "氣", "好"}},
	},
	"clothing": {
		{text: "我著___。", exclude: []string{"著"}},
		{text: "我戴緊___。", exclude: []string{"戴", "緊"}},
		{text: "呢件係___。", exclude: []string{"呢", "件", "係"}},
	},
	"places": {
		{text: "我去___。", exclude: []string{"去"}},
		{text: "呢度係___。", exclude: []string{"呢", "度", "係"}},
		{text: "我喺___。", exclude: []string{"喺"}},
	},
	"body": {
		{text: "呢個係___。", exclude: []string{"呢", "個", "係"}},
		{text: "我用___寫字。", exclude: []string{"用", "寫", "字"}},
		{text: "我嘅___好大。", exclude: []string{"嘅", "好", "大"}},
	},
	"family": {
		{text: "呢個係我___。", exclude: []string{"呢", "個", "係", "我"}},
		{text: "我愛___。", exclude: []string{"愛"}},
	},
	"emotions": {
		{text: "我好___。", exclude: []string{"好"}},
		{text: "佢好___。", exclude: []string{"佢", "好"}},
	},
	"sports": {
		{text: "我鍾意打___。", exclude: []string{"鍾", "意", "打"}},
		{text: "我識玩___。", exclude: []string{"識", "玩"}},
	},
	"transport": {
		{text: "我搭___。", exclude: []string{"搭"}},
		{text: "呢架係___。", exclude: []string{"呢", "架", "係", "船", "渡輪"}},
		{text: "我坐___去。", exclude: []string{"坐", "去"}},
	},
	"nature": {
		{text: "我見到___。", exclude: []string{"見", "到"}},
		{text: "公園有___。", exclude: []string{"公", "園", "有", "太陽", "月亮", "星星", "雲"}},
	},
	"occupations": {
		{text: "佢係___。", exclude: []string{"佢", "係"}},
		{text: "我想做___。", exclude: []string{"我", "想", "做"}},
		{text: "呢個___好叻。", exclude: []string{"呢", "個", "好", "叻"}},
	},
	"hobbies": {
		{text: "我鍾意___。", exclude: []string{"鍾", "意"}},
		{text: "佢識___。", exclude: []string{"佢", "識"}},
		{text: "我哋一齊___。", exclude: []string{"我", "哋", "一", "齊"}},
	},
	"dailyactivities": {
		{text: "我每日都___。", exclude: []string{"我", "每", "日", "都"}},
		{text: "朝早要___。", exclude: []string{"朝", "早", "要"}},
		{text: "我___喇。", exclude: []string{"我", "喇"}},
	},
	"adjectives": {
		{text: "呢個好___。", exclude: []string{"呢", "個", "好"}},
		{text: "佢好___。", exclude: []string{"佢", "好"}},
		{text: "隻狗好___。", exclude: []string{"隻", "狗", "好"}},
	},
	"verbs": {
		{text: "我___緊。", exclude: []string{"我", "緊", "係", "有", "冇"}},
		{text: "佢識___。", exclude: []string{"佢", "識"}},
		{text: "我想___。", exclude: []string{"我", "想"}},
		{text: "佢___學生。", exclude: []string{"佢", "學", "生", "有", "冇", "食", "飲", "去", "嚟", "睇", "聽", "講", "寫", "讀", "做", "玩", "瞓", "買", "賣", "俾", "攞"}},
		{text: "我___錢。", exclude: []string{"我", "錢", "係", "食", "飲", "去", "嚟", "睇", "聽", "講", "寫", "讀", "做", "玩", "瞓", "買", "賣", "俾", "攞"}},
	},
	"quantitywords": {
		{text: "一___蘋果。", exclude: []string{"一", "蘋", "果"}},
		{text: "兩___狗。", exclude: []string{"兩", "狗"}},
		{text: "三___書。", exclude: []string{"三", "書"}},
		{text: "幾___人？", exclude: []string{"幾", "人"}},
	},
	"pronouns": {
		{text: "___去學校。", exclude: []string{"去", "學", "校", "呢個", "嗰個", "邊個", "乜嘢"}},
		{text: "___食飯。", exclude: []string{"食", "飯", "呢個", "嗰個", "邊個", "乜嘢"}},
		{text: "___好靚。", exclude: []string{"好", "靚", "我", "你", "佢", "我哋", "你哋", "佢哋", "邊個", "乜嘢"}},
		{text: "我要___。", exclude: []string{"我", "要", "我哋", "你哋", "佢哋", "邊個", "乜嘢"}},
	},
	"expresswords": {
		{text: "我___食雪糕。", exclude: []string{"我", "食", "雪", "糕"}},
		{text: "佢___去公園。", exclude: []string{"佢", "去", "公", "園"}},
		{text: "你___幫我嗎？", exclude: []string{"你", "幫", "我", "嗎"}},
		{text: "我哋___一齊玩。", exclude: []string{"我", "哋", "一", "齊", "玩"}},
	},
	"questions": {
		{text: "你住喺___？", exclude: []string{"你", "住", "喺", "嗎", "幾時", "點解", "點樣", "幾多", "乜嘢", "邊個"}},
		{text: "___食飯？", exclude: []string{"食", "飯", "嗎", "邊度", "點解", "點樣", "幾多", "乜嘢"}},
		{text: "你___去學校？", exclude: []string{"你", "去", "學", "校", "嗎", "邊度", "邊個", "點樣", "幾多", "乜嘢"}},
		{text: "你食___？", exclude: []string{"你", "食", "嗎", "邊度", "幾時", "邊個", "點解", "點樣", "幾多"}},
	},
	"linkingwords": {
		{text: "___我攰，我要瞓覺。", exclude: []string{"我", "攰", "要", "瞓", "覺", "所以", "但係", "如果", "然後", "同埋", "或者", "仲有"}},
		{text: "我肚餓，___食飯。", exclude: []string{"我", "肚", "餓", "食", "飯", "因為", "但係", "如果", "然後", "同埋", "或者", "仲有"}},
		{text: "___落雨，我哋留喺屋企。", exclude: []string{"落", "雨", "我", "哋", "留", "喺", "屋", "企", "因為", "所以", "但係", "然後", "同埋", "或者", "仲有"}},
		{text: "我想去，___我冇時間。", exclude: []string{"我", "想", "去", "冇", "時", "間", "因為", "所以", "如果", "然後", "同埋", "或者", "仲有"}},
	},
	"lunarnewyear": {
		{text: "新年有___。", exclude: []string{"新", "年", "有"}},
		{text: "我收到___。", exclude: []string{"我", "收", "到"}},
		{text: "新年我見到___。", exclude: []string{"新", "年", "我", "見", "到"}},
	},
	"easter": {
		{text: "復活節有___。", exclude: []string{"復", "活", "節", "有"}},
		{text: "我哋去___。", exclude: []string{"我", "哋", "去"}},
		{text: "復活節我見到___。", exclude: []string{"復", "活", "節", "我", "見", "到"}},
	},
	"dragonboat": {
		{text: "端午節食___。", exclude: []string{"端", "午", "節", "食"}},
		{text: "我哋睇___。", exclude: []string{"我", "哋", "睇"}},
		{text: "端午節有___。", exclude: []string{"端", "午", "節", "有"}},
	},
	"midautumn": {
		{text: "中秋節食___。", exclude: []string{"中", "秋", "節", "食"}},
		{text: "中秋節有___。", exclude: []string{"中", "秋", "節", "有"}},
		{text: "我哋睇___。", exclude: []string{"我", "哋", "睇"}},
	},
	"canadaday": {
		{text: "加拿大日有___。", exclude: []string{"加", "拿", "大", "日", "有"}},
		{text: "我哋睇___。", exclude: []string{"我", "哋", "睇"}},
		{text: "國慶有___。", exclude: []string{"國", "慶", "有"}},
	},
	"thanksgiving": {
		{text: "感恩節食___。", exclude: []string{"感", "恩", "節", "食"}},
		{text: "感恩節有___。", exclude: []string{"感", "恩", "節", "有"}},
		{text: "我哋一齊___。", exclude: []string{"我", "哋", "一", "齊"}},
	},
	"halloween": {
		{text: "萬聖節有___。", exclude: []string{"萬", "聖", "節", "有"}},
		{text: "我哋去___。", exclude: []string{"我", "哋", "去"}},
		{text: "萬聖節我見到___。", exclude: []string{"萬", "聖", "節", "我", "見", "到"}},
	},
	"christmas": {
		{text: "聖誕節有___。", exclude: []string{"聖", "誕", "節", "有"}},
		{text: "我收到___。", exclude: []string{"我", "收", "到"}},
		{text: "聖誕節我見到___。", exclude: []string{"聖", "誕", "節", "我", "見", "到"}},
	},
	"introduction": {
		{text: "我講___。", exclude: []string{"我", "講"}},
		{text: "見到人要講___。", exclude: []string{"見", "到", "人", "要", "講"}},
	},
	"schoolsentences": {
		{text: "喺學校講___。", exclude: []string{"喺", "學", "校", "講"}},
		{text: "老師話___。", exclude: []string{"老", "師", "話"}},
	},
	"restaurantsentences": {
		{text: "喺餐廳講___。", exclude: []string{"喺", "餐", "廳", "講"}},
		{text: "食嘢時講___。", exclude: []string{"食", "嘢", "時", "講"}},
	},
	"shoppingsentences": {
		{text: "買嘢時講___。", exclude: []string{"買", "嘢", "時", "講"}},
		{text: "喺舖頭講___。", exclude: []string{"喺", "舖", "頭", "講"}},
	},
	"homesentences": {
		{text: "喺屋企講___。", exclude: []string{"喺", "屋", "企", "講"}},
		{text: "瞓覺前講___。", exclude: []string{"瞓", "覺", "前", "講"}},
	},
	"playgroundsentences": {
		{text: "玩嘅時候講___。", exclude: []string{"玩", "嘅", "時", "候", "講"}},
		{text: "同朋友講___。", exclude: []string{"同", "朋", "友", "講"}},
	},
	"partysentences": {
		{text: "派對時講___。", exclude: []string{"派", "對", "時", "講"}},
		{text: "開心時講___。", exclude: []string{"開", "心", "時", "講"}},
	},
	"travelsentences": {
		{text: "去旅行時講___。", exclude: []string{"去", "旅", "行", "時", "講"}},
		{text: "坐飛機講___。", exclude: []string{"坐", "飛", "機", "講"}},
	},
	"craftingsentences": {
		{text: "做手工時講___。", exclude: []string{"做", "手", "工", "時", "講"}},
		{text: "完成後講___。", exclude: []string{"完", "成", "後", "講"}},
	},
}

var defaultTemplates = []clozeTemplate{
	{text: "___係乜嘢？", exclude: []string{"係", "乜", "嘢"}},
	{text: "你識唔識___？", exclude: []string{"你", "識", "唔"}},
}

var fallbackTemplate = clozeTemplate{text: "___係咩？"}
