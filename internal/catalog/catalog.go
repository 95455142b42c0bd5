// Package catalog holds the reference list of salon services and training
// courses. It seeds the in-memory store at startup and the Mongo backend via
// cmd/seed.
package catalog

import "github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"

func Services() []models.Service {
	return []models.Service{
		{
			Name:            "Microblading",
			Slug:            "microblading",
			Price:           "450",
			Category:        "eyebrows",
			Duration:        120,
			Description:     "Professional eyebrow microblading treatment",
			LongDescription: "Microblading is a manual method of permanent cosmetics for your eyebrows which creates extremely fine natural looking hair strokes. Ideal for someone who has experienced hair loss and wants to achieve very natural thick, full looking eyebrows. The effects last 18-24 months.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/ERGGdbgnhffvIbjH.jpg",
		},
		{
			Name:            "Acne Treatment",
			Slug:            "acne-treatment",
			Price:           "350",
			Category:        "skin",
			Duration:        60,
			Description:     "Comprehensive acne treatment solution",
			LongDescription: "Advanced acne treatment combining multiple technologies to target the root causes of acne, reduce breakouts, and improve overall skin health.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/CVUpqfAqgXGAFvEw.jpg",
		},
		{
			Name:            "Carbon Peel Laser",
			Slug:            "carbon-peel-laser",
			Price:           "180",
			Category:        "facial",
			Duration:        45,
			Description:     "Advanced carbon peel laser facial",
			LongDescription: "Deep cleansing facial treatment using carbon lotion and laser technology to remove impurities, reduce pore size, and rejuvenate the skin.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/kIPIIRmwSXlcmodo.jpg",
		},
		{
			Name:            "Dermopigmentation",
			Slug:            "dermopigmentation",
			Price:           "600",
			Category:        "facial",
			Duration:        120,
			Description:     "Semi-permanent cosmetic pigmentation",
			LongDescription: "Advanced semi-permanent cosmetic procedure to enhance and define facial features through specialized pigment implantation.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/GBiIrEhekTiGnMey.jpg",
		},
		{
			Name:            "Facial Rejuvenation",
			Slug:            "facial-rejuvenation",
			Price:           "2800",
			Category:        "facial",
			Duration:        180,
			Description:     "Complete facial rejuvenation treatment",
			LongDescription: "Multi-faceted approach combining laser therapy, chemical peels, microneedling, and radiofrequency to restore youthful vitality.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/CRnYLycCDKDnXXly.jpg",
		},
		{
			Name:            "Jawline Contouring",
			Slug:            "jawline-contouring",
			Price:           "650",
			Category:        "facial",
			Duration:        90,
			Description:     "Jawline definition and contouring",
			LongDescription: "Non-invasive treatment to enhance jawline definition and structure using dermal fillers and skin-tightening techniques.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/qLlcTAnkSAKUjzxS.jpg",
		},
		{
			Name:            "Lip Micropigmentation",
			Slug:            "lip-micropigmentation",
			Price:           "650",
			Category:        "lips",
			Duration:        90,
			Description:     "Semi-permanent lip color enhancement",
			LongDescription: "Semi-permanent cosmetic treatment to enhance natural lip shape and color by depositing pigment into the upper layers of the lips.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/QoAhPlcvYrugCrVu.jpg",
		},
		{
			Name:            "Lip Shape Correction",
			Slug:            "lip-shape-correction",
			Price:           "450",
			Category:        "lips",
			Duration:        60,
			Description:     "Lip shape and contour correction",
			LongDescription: "Specialized treatment to enhance and refine natural lip contours, promoting a fuller, more balanced appearance.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/JzwrySEwHZcQXQUs.jpg",
		},
		{
			Name:            "Melasma Treatment",
			Slug:            "melasma-treatment",
			Price:           "550",
			Category:        "skin",
			Duration:        60,
			Description:     "Specialized melasma hyperpigmentation treatment",
			LongDescription: "Advanced treatment combining chemical peels, laser therapy, and topical agents to reduce melanin production and lighten dark spots.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/DXSecXnwwvjbkrWG.jpg",
		},
		{
			Name:            "Lip Volumization",
			Slug:            "lip-volumization",
			Price:           "400",
			Category:        "lips",
			Duration:        45,
			Description:     "Lip volume enhancement with dermal fillers",
			LongDescription: "Quick, non-surgical treatment using advanced dermal fillers to enhance lip fullness and improve contour with minimal downtime.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/yKbYUJpSluPZVnzZ.jpg",
		},
		{
			Name:            "Nasolabial Folds",
			Slug:            "nasolabial-folds",
			Price:           "250",
			Category:        "facial",
			Duration:        45,
			Description:     "Nasolabial fold reduction treatment",
			LongDescription: "Non-invasive treatment to reduce the appearance of nasolabial folds and improve facial contours.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/KmanTFsSRkesmoVR.jpg",
		},
		{
			Name:            "Nose Shape Correction",
			Slug:            "nose-shape-correction",
			Price:           "550",
			Category:        "facial",
			Duration:        60,
			Description:     "Non-surgical nose shape correction",
			LongDescription: "Non-surgical nose enhancement using dermal fillers and advanced techniques to achieve desired shape and balance.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/ioVJdcXcoihCEcUb.jpg",
		},
		{
			Name:            "Permanent Make-up",
			Slug:            "permanent-makeup",
			Price:           "800",
			Category:        "facial",
			Duration:        120,
			Description:     "Professional permanent makeup application",
			LongDescription: "Professional permanent makeup application for eyebrows, eyeliner, and lips using advanced pigmentation techniques.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/LZlsIcTsDURRSOGd.jpg",
		},
		{
			Name:            "Plasma Lift",
			Slug:            "plasma-lift",
			Price:           "600",
			Category:        "facial",
			Duration:        90,
			Description:     "Non-surgical plasma lift facelift",
			LongDescription: "Advanced non-surgical facelift treatment using plasma technology to tighten skin and reduce signs of aging.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/SxOLEHuomgYVhrgD.jpg",
		},
		{
			Name:            "Radiofrequency Microneedling",
			Slug:            "radiofrequency-microneedling",
			Price:           "180",
			Category:        "skin",
			Duration:        60,
			Description:     "Advanced RF microneedling treatment",
			LongDescription: "Cutting-edge treatment combining radiofrequency and microneedling to stimulate collagen production and rejuvenate skin.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/JmTSWpzzWuPigQni.jpg",
		},
		{
			Name:            "Rhinofiller",
			Slug:            "rhinofiller",
			Price:           "200",
			Category:        "facial",
			Duration:        45,
			Description:     "Non-surgical nose enhancement with fillers",
			LongDescription: "Non-surgical nose enhancement using dermal fillers to achieve desired shape without surgery.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/JMarJYoqEuBPQVHc.jpg",
		},
		{
			Name:            "Russian Lips",
			Slug:            "russian-lips",
			Price:           "700",
			Category:        "lips",
			Duration:        90,
			Description:     "Russian technique lip enhancement",
			LongDescription: "Advanced lip enhancement using the Russian technique to create fuller, more defined lips with natural-looking results.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/aZqMaLlkmbazUpxl.jpg",
		},
		{
			Name:            "Skin Booster",
			Slug:            "skin-booster",
			Price:           "300",
			Category:        "skin",
			Duration:        45,
			Description:     "Advanced skin hydration and rejuvenation",
			LongDescription: "Innovative treatment to boost skin hydration and rejuvenation using advanced techniques and premium products.",
			ImageURL:        "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/tUXENpHrBZknnLFp.jpg",
		},
	}
}

func Courses() []models.Course {
	return []models.Course{
		{
			Name:        "Hyaluron Pen Lip Volume Kit included",
			Slug:        "hyaluron-pen-lip-volume-kit-included",
			TrainerName: "Carmen Scortanu",
			Price:       "1000",
			Duration:    "12h",
			Description: "Professional Hyaluron Pen training for lip volume enhancement with complete kit included",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/pQeodcyBxbOOzOqE.jpg",
		},
		{
			Name:        "Corrective Morphology",
			Slug:        "corrective-morphology",
			TrainerName: "Carmen Scortanu",
			Price:       "1000",
			Duration:    "12h",
			Description: "Advanced corrective morphology techniques for facial aesthetics",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/qfGApyyMjQDCjWxC.jpg",
		},
		{
			Name:        "Dermopigmentation",
			Slug:        "dermopigmentation-course",
			TrainerName: "Carmen Scortanu",
			Price:       "1000",
			Duration:    "12h",
			Description: "Comprehensive dermopigmentation training for permanent makeup applications",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/GBiIrEhekTiGnMey.jpg",
		},
		{
			Name:        "Microblading Course Eyebrows Without KIT",
			Slug:        "microblading-course-eyebrows-without-kit",
			TrainerName: "Carmen Scortanu",
			Price:       "790",
			Duration:    "8h",
			Description: "Professional microblading course for eyebrows without kit",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/ERGGdbgnhffvIbjH.jpg",
		},
		{
			Name:        "Hyaluron Pen Lip Volume Without Kit",
			Slug:        "hyaluron-pen-lip-volume-without-kit",
			TrainerName: "Carmen Scortanu",
			Price:       "500",
			Duration:    "8h",
			Description: "Hyaluron Pen training for lip volume enhancement without kit",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/pQeodcyBxbOOzOqE.jpg",
		},
		{
			Name:        "Hyaluron pen course for other areas. including KIT",
			Slug:        "hyaluron-pen-other-areas-with-kit",
			TrainerName: "Carmen Scortanu",
			Price:       "1000",
			Duration:    "8h",
			Description: "Hyaluron Pen training for various facial areas with complete kit included",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/yKbYUJpSluPZVnzZ.jpg",
		},
		{
			Name:        "Hyaluron pen course for other areas. Without KIT",
			Slug:        "hyaluron-pen-other-areas-without-kit",
			TrainerName: "Carmen Scortanu",
			Price:       "500",
			Duration:    "8h",
			Description: "Hyaluron Pen training for various facial areas without kit",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/yKbYUJpSluPZVnzZ.jpg",
		},
		{
			Name:        "Microblading course for men's eyebrows, realistic technique, without KIT",
			Slug:        "microblading-mens-eyebrows-without-kit",
			TrainerName: "Carmen Scortanu",
			Price:       "1200",
			Duration:    "72h",
			Description: "Specialized microblading course for men's eyebrows using realistic technique without kit",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/SLkTRhLxFMqnVoJd.jpg",
		},
		{
			Name:        "Microblading course for men's eyebrows, realistic technique, including KIT",
			Slug:        "microblading-mens-eyebrows-with-kit",
			TrainerName: "Carmen Scortanu",
			Price:       "1800",
			Duration:    "8h",
			Description: "Specialized microblading course for men's eyebrows using realistic technique with kit included",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/SLkTRhLxFMqnVoJd.jpg",
		},
		{
			Name:        "Microblading Advanced Course for Womens",
			Slug:        "microblading-advanced-womens",
			TrainerName: "Carmen Scortanu",
			Price:       "800",
			Duration:    "8h",
			Description: "Advanced microblading techniques for women's eyebrows",
			ImageURL:    "https://files.manuscdn.com/user_upload_by_module/session_file/310519663345623151/ERGGdbgnhffvIbjH.jpg",
		},
	}
}
