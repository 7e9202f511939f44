package classification

import "github.com/nimesh4992/Stack-sub000/internal/model"

var defaultTable = []struct {
	category model.CategoryID
	words    []string
}{
	{model.CategoryFood, []string{"swiggy", "zomato", "dominos", "pizza", "mcdonald", "kfc", "starbucks", "restaurant", "cafe", "burger"}},
	{model.CategoryGroceries, []string{"bigbasket", "blinkit", "zepto", "dmart", "instamart", "jiomart", "grofers", "grocery", "supermarket"}},
	{model.CategoryTransport, []string{"uber", "olacabs", "rapido", "irctc", "redbus", "petrol", "fuel"}},
	{model.CategoryShopping, []string{"amazon", "flipkart", "myntra", "ajio", "meesho", "nykaa", "decathlon"}},
	{model.CategoryEntertainment, []string{"netflix", "spotify", "hotstar", "prime video", "bookmyshow", "pvr", "inox", "youtube"}},
	{model.CategoryBills, []string{"airtel", "jio", "vodafone", "electricity", "broadband", "recharge", "insurance", "bill"}},
}

// DefaultKeywords returns the built-in keyword table in match order.
// Grocery apps come before "jio" so JioMart is not read as a phone bill.
func DefaultKeywords() []Keyword {
	var out []Keyword
	for _, group := range defaultTable {
		for _, w := range group.words {
			out = append(out, Keyword{Keyword: w, Category: group.category})
		}
	}
	return out
}
