package model

// Category is an asset class. The set is closed: every value a holding can
// take is declared below.
type Category int

const (
	Uncategorized       Category = iota // code not present in the classification table
	DevelopedEquity                     // 先進国株
	EmergingEquity                      // 新興国株
	DomesticLargeCap                    // 国内大型株
	DomesticSmallMidCap                 // 国内中小型株
	DevelopedBonds                      // 先進国債券
	EmergingBonds                       // 新興国債券
	DomesticBonds                       // 国内債券
	Gold                                // 金
	DevelopedREIT                       // 先進国REIT
	DomesticREIT                        // 国内REIT
	Cash                                // 現金
)

var categoryNames = [...]string{
	Uncategorized:       "uncategorized",
	DevelopedEquity:     "developed equity",
	EmergingEquity:      "emerging equity",
	DomesticLargeCap:    "domestic large-cap",
	DomesticSmallMidCap: "domestic small/mid-cap",
	DevelopedBonds:      "developed bonds",
	EmergingBonds:       "emerging bonds",
	DomesticBonds:       "domestic bonds",
	Gold:                "gold",
	DevelopedREIT:       "developed REIT",
	DomesticREIT:        "domestic REIT",
	Cash:                "cash",
}

// Categories returns the eleven named asset classes in display order.
// Uncategorized is not included.
func Categories() []Category {
	return []Category{
		DevelopedEquity, EmergingEquity, DomesticLargeCap, DomesticSmallMidCap,
		DevelopedBonds, EmergingBonds, DomesticBonds,
		Gold, DevelopedREIT, DomesticREIT, Cash,
	}
}

// Valid reports whether c is one of the declared categories, Uncategorized included.
func (c Category) Valid() bool {
	return c >= Uncategorized && c <= Cash
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}
