package db

import (
	"context"

	"ayurvignana/internal/models"
)

// DefaultHerbs returns the built-in herb catalog.
func DefaultHerbs() []models.Herb {
	return []models.Herb{
		{
			Name:               "Ashwagandha",
			ScientificName:     "Withania somnifera",
			Nature:             "Warming",
			DoshaCompatibility: "Vata, Kapha",
			Description:        "Known as 'Indian Ginseng', Ashwagandha is a powerful adaptogen that helps reduce stress and anxiety while boosting immunity and energy levels. It's particularly effective for addressing nervous exhaustion and insomnia.",
			Benefits:           []string{"Reduces stress and anxiety", "Boosts immunity", "Improves energy levels", "Helps with insomnia"},
			Contraindications:  []string{"Pregnancy", "Severe autoimmune conditions"},
			Dosage:             "1-2 teaspoons of powder daily",
		},
		{
			Name:               "Tulsi",
			ScientificName:     "Ocimum sanctum",
			Nature:             "Cooling",
			DoshaCompatibility: "Vata, Kapha",
			Description:        "Sacred Holy Basil is an adaptogenic herb revered in Ayurveda for its healing properties. It helps the body cope with stress and promotes respiratory health, while purifying the blood and supporting the immune system.",
			Benefits:           []string{"Respiratory health", "Blood purification", "Immune support", "Stress management"},
			Contraindications:  []string{"May reduce fertility", "Blood thinning medications"},
			Dosage:             "1-2 teaspoons of dried herb",
		},
		{
			Name:               "Turmeric",
			ScientificName:     "Curcuma longa",
			Nature:             "Warming",
			DoshaCompatibility: "Vata, Kapha",
			Description:        "A powerful anti-inflammatory herb containing curcumin that helps with digestive issues, joint pain, skin conditions, and blood purification. It's a cornerstone of Ayurvedic medicine for treating inflammation.",
			Benefits:           []string{"Anti-inflammatory", "Blood purification", "Digestive support", "Joint health"},
			Contraindications:  []string{"Gallbladder problems", "Blood thinning medications", "Before surgery"},
			Dosage:             "1/2 to 1 teaspoon daily",
		},
		{
			Name:               "Brahmi",
			ScientificName:     "Bacopa monnieri",
			Nature:             "Cooling",
			DoshaCompatibility: "Pitta, Vata",
			Description:        "Enhances cognitive function, improves memory, and helps manage anxiety and stress. Traditionally used to support the nervous system and improve concentration, it's considered one of the best brain tonics in Ayurveda.",
			Benefits:           []string{"Cognitive enhancement", "Memory improvement", "Anxiety reduction", "Nervous system support"},
			Contraindications:  []string{"May slow heart rate", "Excess can cause digestive upset"},
			Dosage:             "300-600mg daily",
		},
		{
			Name:               "Shatavari",
			ScientificName:     "Asparagus racemosus",
			Nature:             "Cooling",
			DoshaCompatibility: "Pitta, Vata",
			Description:        "Known as the 'Queen of Herbs', Shatavari is primarily used for female reproductive health. It helps balance hormones, supports lactation, and strengthens the immune system. It's also beneficial for digestive health.",
			Benefits:           []string{"Female reproductive health", "Hormonal balance", "Lactation support", "Digestive health"},
			Contraindications:  []string{"Edema", "Excess kapha conditions"},
			Dosage:             "1-2 teaspoons daily",
		},
		{
			Name:               "Neem",
			ScientificName:     "Azadirachta indica",
			Nature:             "Cooling",
			DoshaCompatibility: "Pitta, Kapha",
			Description:        "A powerful detoxifying herb with antibacterial, antifungal, and blood-purifying properties. Neem is used for skin conditions, dental health, and to support the liver. It's also an effective immune booster.",
			Benefits:           []string{"Blood purification", "Skin health", "Dental hygiene", "Liver support"},
			Contraindications:  []string{"Pregnancy", "Trying to conceive", "Excessive for Vata types"},
			Dosage:             "250-500mg twice daily",
		},
	}
}

// SeedHerbs inserts herbs into the catalog. Skips herbs that already exist.
// Returns the number of herbs inserted.
func (d *DB) SeedHerbs(ctx context.Context, herbs []models.Herb) (int, error) {
	inserted := 0
	for i := range herbs {
		ok, err := d.InsertHerb(ctx, &herbs[i])
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}
