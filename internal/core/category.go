package core

// Category is one entry of the fixed suggestion list shown on the add
// form. The field on a record stays free-form; this list only seeds the
// picker.
type Category struct {
	ID    string
	Label string
	Hint  string
}

// GroupedCategory is the fixed label assigned to records assembled from
// a pending list.
const GroupedCategory = "Market/Shopping"

var Categories = []Category{
	{ID: "transport", Label: "Transport", Hint: "Keke, Bolt, Fuel"},
	{ID: "food", Label: "Food & Groceries", Hint: "Mama Put, Supermarket"},
	{ID: "data", Label: "Data & Airtime", Hint: "MTN, Airtel, Glo"},
	{ID: "family", Label: "Family Support", Hint: "Black tax, Send home"},
	{ID: "shopping", Label: "Shopping", Hint: "Clothes, Electronics"},
	{ID: "others", Label: "Others", Hint: "Miscellaneous"},
}
