package storefrontserver

// Article is the catalog representation returned to clients. UnitPrice is
// a decimal string with two fraction digits.
type Article struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   string `json:"unitPrice"`
}
