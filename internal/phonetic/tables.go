package phonetic

// englishSoundAlikes maps English words a recognizer may return to the
// toneless syllable they resemble.
var englishSoundAlikes = map[string]string{
	"look": "luk", "luck": "luk",
	"see": "si", "sea": "si",
	"my": "mai", "mine": "main",
	"ye": "je", "yeah": "je",
	"knee": "nei", "nay": "nei",
	"go": "gou", "goal": "gou",
	"high": "hai", "hi": "hai",
	"boy": "boi",
	"toy": "toi",
	"joy": "zoi",
	"sue": "syu", "shoe": "syu",
	"you": "jau",
	"may": "mei",
	"say": "sai",
	"die": "dai", "dye": "dai",
	"guy": "gai",
	"song": "soeng", "sung": "sung",
	"gung": "gung", "kung": "gung",
	"hung": "hung",
	"done": "daan",
	"one": "jat", "won": "jat",
	"two": "ji",
	"three": "saam",
	"four": "sei",
	"five": "ng",
	"six": "luk",
	"seven": "cat",
	"eight": "baat",
	"nine": "gau",
	"ten": "sap",
}

// homophones covers characters recognizers return that the corpus may lack,
// mostly simplified forms.
var homophones = map[rune]string{
	'哈': "haa", '嗨': "haai", '蛤': "haa", '瞎': "hat",
	'红': "hung", '弘': "wang", '虹': "hung",
	'吗': "maa", '妈': "maa", '嘛': "maa", '麻': "maa", '马': "maa",
	'他': "taa", '她': "taa", '它': "taa", '塔': "taap",
	'的': "dik", '得': "dak", '地': "dei",
	'了': "liu", '料': "liu",
	'和': "wo", '河': "ho", '何': "ho",
	'不': "bat", '布': "bou",
	'会': "wui", '回': "wui", '惠': "wai",
	'把': "baa", '吧': "baa", '爸': "baa",
	'个': "go", '哥': "go", '歌': "go",
	'们': "mun", '门': "mun", '闷': "mun",
	'吃': "hek", '迟': "ci",
	'喝': "hot", '合': "hap", '盒': "hap",
	'看': "hon", '刊': "hon",
	'说': "syut", '雪': "syut",
	'来': "loi", '赖': "laai", '莱': "loi",
	'走': "zau", '奏': "zau",
	'给': "kap", '急': "gap",
	'怎': "zam", '斩': "zaam",
	'为': "wai", '位': "wai", '围': "wai",
	'很': "han", '恨': "han", '痕': "han",
	'过': "gwo", '锅': "wo",
	'着': "zoek", '著': "zoek",
	'对': "deoi", '队': "deoi",
	'让': "joeng", '酿': "joeng",
	'就': "zau", '九': "gau", '旧': "gau",
	'还': "waan", '环': "waan",
	'从': "cung", '丛': "cung",
	'被': "bei", '杯': "bui", '背': "bui",
	'啊': "aa", '阿': "aa", '呀': "aa",
	'哦': "o", '噢': "o",
	'嗯': "ng", '唔': "ng",
	'那': "naa", '拿': "naa", '哪': "naa",
	'这': "ze", '遮': "ze",
	'真': "zan", '珍': "zan",
	'长': "coeng", '场': "coeng", '常': "soeng",
	'没': "mut", '每': "mui",
	'只': "zi", '指': "zi", '纸': "zi",
	'最': "zeoi", '嘴': "zeoi",
	'但': "daan", '蛋': "daan", '单': "daan",
	'因': "jan", '音': "jam", '饮': "jam",
	'所': "so", '锁': "so",
	'能': "nang", '农': "nung",
	'也': "jaa", '夜': "je", '爷': "je",
	'些': "se", '写': "se",
	'像': "zoeng", '象': "zoeng",
}
