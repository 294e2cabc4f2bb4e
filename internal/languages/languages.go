// Package languages holds the fixed enumeration of languages a learner
// can pick as native or target. Forms never accept free-text languages.
package languages

// World lists every selectable language, alphabetically.
var World = []string{
	"Afrikaans", "Albanian", "Amharic", "Arabic", "Armenian", "Azerbaijani",
	"Basque", "Belarusian", "Bengali", "Bosnian", "Bulgarian", "Burmese",
	"Catalan", "Cebuano", "Chinese (Mandarin)", "Chinese (Cantonese)", "Croatian", "Czech",
	"Danish", "Dutch", "English", "Esperanto", "Estonian",
	"Finnish", "French", "Galician", "Georgian", "German", "Greek", "Gujarati",
	"Haitian Creole", "Hausa", "Hawaiian", "Hebrew", "Hindi", "Hmong", "Hungarian",
	"Icelandic", "Igbo", "Indonesian", "Irish", "Italian",
	"Japanese", "Javanese", "Kannada", "Kazakh", "Khmer", "Korean", "Kurdish",
	"Kyrgyz", "Lao", "Latin", "Latvian", "Lithuanian", "Luxembourgish",
	"Macedonian", "Malagasy", "Malay", "Malayalam", "Maltese", "Maori", "Marathi", "Mongolian",
	"Nepali", "Norwegian",
	"Pashto", "Persian", "Polish", "Portuguese", "Punjabi",
	"Romanian", "Russian",
	"Samoan", "Scots Gaelic", "Serbian", "Sesotho", "Shona", "Sindhi", "Sinhala", "Slovak",
	"Slovenian", "Somali", "Spanish", "Sundanese", "Swahili", "Swedish",
	"Tajik", "Tamil", "Telugu", "Thai", "Turkish",
	"Ukrainian", "Urdu", "Uzbek",
	"Vietnamese",
	"Welsh",
	"Xhosa",
	"Yiddish", "Yoruba",
	"Zulu",
}

// Contains reports whether name is a selectable language.
func Contains(name string) bool {
	for _, l := range World {
		if l == name {
			return true
		}
	}
	return false
}
