package deepl

// Language is a source or target language code understood by the service.
// Region-specific variants (EN-GB, PT-BR, ...) are only valid as targets.
type Language string

const (
	LangBG   Language = "BG"
	LangCS   Language = "CS"
	LangDA   Language = "DA"
	LangDE   Language = "DE"
	LangEL   Language = "EL"
	LangEN   Language = "EN"
	LangENGB Language = "EN-GB"
	LangENUS Language = "EN-US"
	LangES   Language = "ES"
	LangET   Language = "ET"
	LangFI   Language = "FI"
	LangFR   Language = "FR"
	LangHU   Language = "HU"
	LangID   Language = "ID"
	LangIT   Language = "IT"
	LangJA   Language = "JA"
	LangLT   Language = "LT"
	LangLV   Language = "LV"
	LangNL   Language = "NL"
	LangPL   Language = "PL"
	LangPT   Language = "PT"
	LangPTBR Language = "PT-BR"
	LangPTPT Language = "PT-PT"
	LangRO   Language = "RO"
	LangRU   Language = "RU"
	LangSK   Language = "SK"
	LangSL   Language = "SL"
	LangSV   Language = "SV"
	LangTR   Language = "TR"
	LangUK   Language = "UK"
	LangZH   Language = "ZH"
)
