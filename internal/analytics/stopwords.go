package analytics

// spanishStopwords is the fixed Spanish stopword set for the word-frequency
// view, plus URL artifacts (http, www, domain suffixes) common in
// social-media exports.
var spanishStopwords = map[string]struct{}{
	"de": {}, "la": {}, "que": {}, "el": {}, "en": {}, "y": {}, "a": {},
	"los": {}, "del": {}, "se": {}, "las": {}, "por": {}, "un": {},
	"para": {}, "con": {}, "no": {}, "una": {}, "su": {}, "al": {},
	"es": {}, "lo": {}, "como": {}, "más": {}, "pero": {}, "sus": {},
	"le": {}, "ya": {}, "o": {}, "este": {}, "sí": {}, "porque": {},
	"esta": {}, "entre": {}, "cuando": {}, "muy": {}, "sin": {},
	"sobre": {}, "también": {}, "me": {}, "hasta": {}, "hay": {},
	"donde": {}, "quien": {}, "desde": {}, "todo": {}, "nos": {},
	"durante": {}, "todos": {}, "uno": {}, "les": {}, "ni": {},
	"contra": {}, "otros": {}, "ese": {}, "eso": {}, "ante": {},
	"ellos": {}, "e": {}, "esto": {}, "mí": {}, "antes": {},
	"algunos": {}, "qué": {}, "unos": {}, "yo": {}, "otro": {},
	"otras": {}, "otra": {}, "él": {}, "tanto": {}, "esa": {},
	"estos": {}, "mucho": {}, "quienes": {}, "nada": {}, "muchos": {},
	"cual": {}, "poco": {}, "ella": {}, "estar": {}, "estas": {},
	"algunas": {}, "algo": {}, "nosotros": {}, "mi": {}, "mis": {},
	"tú": {}, "te": {}, "ti": {}, "tu": {}, "tus": {}, "ellas": {},
	"nosotras": {}, "vosotros": {}, "vosotras": {}, "os": {},
	"mío": {}, "mía": {}, "míos": {}, "mías": {}, "tuyo": {},
	"tuya": {}, "tuyos": {}, "tuyas": {}, "suyo": {}, "suya": {},
	"suyos": {}, "suyas": {}, "nuestro": {}, "nuestra": {},
	"nuestros": {}, "nuestras": {}, "vuestro": {}, "vuestra": {},
	"vuestros": {}, "vuestras": {}, "esos": {}, "esas": {},
	"estoy": {}, "estás": {}, "está": {}, "estamos": {},
	"estáis": {}, "están": {}, "esté": {}, "estés": {},
	"estemos": {}, "estéis": {}, "estén": {}, "estaré": {},
	"estarás": {}, "estará": {}, "estaremos": {}, "estaréis": {},
	"estarán": {}, "estaría": {}, "estarías": {}, "estaríamos": {},
	"estaríais": {}, "estarían": {}, "estaba": {}, "estabas": {},
	"estábamos": {}, "estabais": {}, "estaban": {}, "estuve": {},
	"estuviste": {}, "estuvo": {}, "estuvimos": {}, "estuvisteis": {},
	"estuvieron": {}, "estuviera": {}, "estuvieras": {},
	"estuviéramos": {}, "estuvierais": {}, "estuvieran": {},
	"estuviese": {}, "estuvieses": {}, "estuviésemos": {},
	"estuvieseis": {}, "estuviesen": {}, "estando": {}, "estado": {},
	"estada": {}, "estados": {}, "estadas": {}, "estad": {},
	"http": {}, "https": {}, "www": {}, "com": {}, "co": {},
	"org": {}, "net": {}, "bin": {}, "bit": {}, "cada": {},
	"asi": {}, "así": {}, "solo": {}, "sólo": {}, "si": {},
	"tras": {},
}
