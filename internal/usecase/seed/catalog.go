package seed

import "github.com/closetiq/outfitsearch/internal/domain/outfit"

// referenceOutfit is one entry of the fixed seed set.
type referenceOutfit struct {
	occasion string
	style    string
	items    []string
	image    string
}

// referenceSet is the catalog seeded into an empty store, one outfit per
// occasion the mobile client offers.
var referenceSet = []referenceOutfit{
	{
		occasion: "date",
		style:    "casual",
		items:    []string{"White linen shirt", "Dark jeans", "Loafers"},
		image:    "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg",
	},
	{
		occasion: "coffee",
		style:    "relaxed",
		items:    []string{"Beige knit sweater", "Straight-leg trousers", "White sneakers"},
		image:    "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg",
	},
	{
		occasion: "interview",
		style:    "formal",
		items:    []string{"Navy blazer", "White dress shirt", "Grey trousers", "Oxford shoes"},
		image:    "https://images.pexels.com/photos/3760583/pexels-photo-3760583.jpeg",
	},
	{
		occasion: "party",
		style:    "bold",
		items:    []string{"Black satin dress", "Heeled sandals", "Statement earrings"},
		image:    "https://images.pexels.com/photos/1926769/pexels-photo-1926769.jpeg",
	},
	{
		occasion: "beach",
		style:    "breezy",
		items:    []string{"Linen shorts", "Camp collar shirt", "Espadrilles"},
		image:    "https://images.pexels.com/photos/1183266/pexels-photo-1183266.jpeg",
	},
}

func (r referenceOutfit) toDomain() (outfit.Outfit, error) {
	return outfit.New(r.occasion, r.style, r.items, r.image)
}
