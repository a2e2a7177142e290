package scoring

import "golang.org/x/text/unicode/norm"

// NormalizeUnicode applies NFKC normalization to convert
// mathematical/stylistic Unicode variants to ASCII equivalents before
// keyword matching
//
// Examples:
//
//	𝐔𝐫𝐠𝐞𝐧𝐭 → Urgent (mathematical bold)
//	Ｕｒｇｅｎｔ → Urgent (fullwidth)
//	ⓤⓡⓖⓔⓝⓣ → urgent (circled)
func NormalizeUnicode(text string) (normalized string, wasNormalized bool) {
	normalized = norm.NFKC.String(text)
	wasNormalized = normalized != text
	return
}
