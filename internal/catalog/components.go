package catalog

import "github.com/theirongolddev/mealplan/internal/model"

// Bases

var steamedWhiteRice = model.Component{
	ID:          "steamed-white-rice",
	Name:        "Steamed White Rice",
	Role:        model.RoleBase,
	Cuisine:     model.CuisineUniversal,
	TotalCost:   0.30,
	Nutrition:   model.Nutrition{Calories: 260, Protein: 5, Carbs: 57, Fat: 1, Fibre: 1},
	PrepMins:    5,
	CookMins:    20,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Jasmine rice", "80g dry", model.CategoryGrains, 0.20),
		ing("Water", "150ml", model.CategoryPantry, 0.00),
		ing("Salt", "pinch", model.CategoryHerbs, 0.05),
		ing("Pandan leaf", "1 leaf", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Rinse rice until water runs clear.",
		"Add rice and water to pot in 1:1.5 ratio.",
		"Bring to boil, then reduce heat and simmer covered 15 min.",
		"Rest 5 min off heat before fluffing.",
	},
}

var steamedBrownRice = model.Component{
	ID:          "steamed-brown-rice",
	Name:        "Steamed Brown Rice",
	Role:        model.RoleBase,
	Cuisine:     model.CuisineUniversal,
	TotalCost:   0.40,
	Nutrition:   model.Nutrition{Calories: 220, Protein: 5, Carbs: 46, Fat: 2, Fibre: 3},
	PrepMins:    5,
	CookMins:    35,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Brown rice", "75g dry", model.CategoryGrains, 0.30),
		ing("Water", "160ml", model.CategoryPantry, 0.00),
		ing("Salt", "pinch", model.CategoryHerbs, 0.05),
		ing("Sesame oil", "¼ tsp", model.CategoryPantry, 0.05),
	},
	Instructions: []string{
		"Soak brown rice 30 min to reduce cooking time.",
		"Drain and add 1:2 water ratio.",
		"Bring to boil, reduce heat, simmer covered 30 min.",
		"Rest 10 min before serving.",
	},
}

var plainBeehoon = model.Component{
	ID:          "plain-beehoon",
	Name:        "Plain Bee Hoon",
	Role:        model.RoleBase,
	Cuisine:     model.CuisineChinese,
	TotalCost:   0.50,
	Nutrition:   model.Nutrition{Calories: 200, Protein: 4, Carbs: 42, Fat: 1, Fibre: 1},
	PrepMins:    5,
	CookMins:    10,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Dried bee hoon (rice vermicelli)", "80g", model.CategoryGrains, 0.35),
		ing("Sesame oil", "½ tsp", model.CategoryPantry, 0.05),
		ing("Salt", "pinch", model.CategoryHerbs, 0.05),
		ing("Spring onion", "1 stalk", model.CategoryVegetables, 0.05),
	},
	Instructions: []string{
		"Soak bee hoon in warm water 10 min until softened.",
		"Boil pot of water, blanch bee hoon 1 min.",
		"Drain and toss with sesame oil and salt.",
		"Garnish with sliced spring onion.",
	},
}

var plainNoodles = model.Component{
	ID:          "plain-noodles",
	Name:        "Plain Noodles",
	Role:        model.RoleBase,
	Cuisine:     model.CuisineUniversal,
	TotalCost:   0.50,
	Nutrition:   model.Nutrition{Calories: 220, Protein: 7, Carbs: 43, Fat: 2, Fibre: 2},
	PrepMins:    5,
	CookMins:    10,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Fresh yellow noodles or pasta", "120g", model.CategoryGrains, 0.35),
		ing("Sesame oil", "½ tsp", model.CategoryPantry, 0.05),
		ing("Soy sauce", "½ tsp", model.CategoryPantry, 0.05),
		ing("Spring onion", "1 stalk", model.CategoryVegetables, 0.05),
	},
	Instructions: []string{
		"Boil salted water, add noodles and cook 3–5 min until al dente.",
		"Drain and rinse with cold water to stop cooking.",
		"Toss with sesame oil and a dash of soy sauce.",
	},
}

var wholemealBread = model.Component{
	ID:          "wholemeal-bread",
	Name:        "Wholemeal Bread (2 slices)",
	Role:        model.RoleBase,
	Cuisine:     model.CuisineWestern,
	TotalCost:   0.40,
	Nutrition:   model.Nutrition{Calories: 160, Protein: 6, Carbs: 30, Fat: 2, Fibre: 4},
	PrepMins:    2,
	CookMins:    3,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Wholemeal bread", "2 slices", model.CategoryGrains, 0.35),
		ing("Butter", "1 tsp", model.CategoryDairy, 0.05),
	},
	Instructions: []string{
		"Toast bread until golden.",
		"Spread with a thin layer of butter if desired.",
	},
}

// Breakfast items

var kayaToastEggs = model.Component{
	ID:          "kaya-toast-eggs",
	Name:        "Kaya Toast & Soft Boiled Eggs",
	Role:        model.RoleBreakfast,
	Cuisine:     model.CuisineChinese,
	TotalCost:   1.50,
	Nutrition:   model.Nutrition{Calories: 380, Protein: 14, Carbs: 42, Fat: 16, Fibre: 2},
	PrepMins:    5,
	CookMins:    10,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("White bread", "2 slices", model.CategoryGrains, 0.30),
		ing("Kaya spread", "2 tbsp", model.CategoryPantry, 0.50),
		ing("Butter", "1 tsp", model.CategoryDairy, 0.10),
		ing("Eggs", "2", model.CategoryDairy, 0.60),
	},
	Instructions: []string{
		"Toast bread until golden brown.",
		"Spread kaya generously, top with butter.",
		"Boil eggs in simmering water 6 min for soft yolk.",
		"Crack eggs into a bowl, season with soy sauce and white pepper.",
	},
}

var breadAndEggs = model.Component{
	ID:          "bread-and-eggs",
	Name:        "Bread with Eggs",
	Role:        model.RoleBreakfast,
	Cuisine:     model.CuisineUniversal,
	TotalCost:   2.00,
	Nutrition:   model.Nutrition{Calories: 320, Protein: 16, Carbs: 28, Fat: 14, Fibre: 3},
	PrepMins:    5,
	CookMins:    8,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Wholemeal bread", "2 slices", model.CategoryGrains, 0.35),
		ing("Eggs", "2", model.CategoryDairy, 1.60),
		ing("Butter", "½ tsp", model.CategoryDairy, 0.05),
	},
	Instructions: []string{
		"Toast bread until golden.",
		"Heat pan with a little butter over medium heat.",
		"Scramble or fry eggs to preference.",
		"Serve eggs on toast.",
	},
}

var nasiLemakSimple = model.Component{
	ID:          "nasi-lemak-simple",
	Name:        "Nasi Lemak",
	Role:        model.RoleBreakfast,
	Cuisine:     model.CuisineMalay,
	TotalCost:   3.00,
	Nutrition:   model.Nutrition{Calories: 450, Protein: 12, Carbs: 58, Fat: 18, Fibre: 3},
	PrepMins:    15,
	CookMins:    25,
	Difficulty:  model.Medium,
	KidFriendly: false,
	Ingredients: []model.Ingredient{
		ing("Coconut rice", "1 cup cooked", model.CategoryGrains, 0.60),
		ing("Sambal", "2 tbsp", model.CategoryPantry, 0.50),
		ing("Ikan bilis (dried anchovies)", "30g", model.CategoryProteins, 0.80),
		ing("Peanuts", "20g", model.CategoryPantry, 0.30),
		ing("Egg", "1", model.CategoryDairy, 0.30),
		ing("Cucumber", "3 slices", model.CategoryVegetables, 0.20),
		ing("Pandan leaf", "1 leaf", model.CategoryHerbs, 0.10),
		ing("Coconut milk", "50ml", model.CategoryDairy, 0.20),
	},
	Instructions: []string{
		"Cook rice with coconut milk, pandan leaf and salt.",
		"Fry ikan bilis and peanuts until crispy.",
		"Fry egg sunny side up.",
		"Assemble rice with sambal, ikan bilis, peanuts, egg and cucumber.",
	},
}

var rotiPrataDhal = model.Component{
	ID:          "roti-prata-dhal",
	Name:        "Roti Prata with Dhal",
	Role:        model.RoleBreakfast,
	Cuisine:     model.CuisineIndian,
	TotalCost:   2.80,
	Nutrition:   model.Nutrition{Calories: 420, Protein: 12, Carbs: 52, Fat: 16, Fibre: 5},
	PrepMins:    5,
	CookMins:    15,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Frozen roti prata", "2 pieces", model.CategoryGrains, 1.20),
		ing("Dhal (lentil curry)", "150ml", model.CategoryProteins, 0.80),
		ing("Onion", "¼ onion", model.CategoryVegetables, 0.20),
		ing("Ghee", "1 tsp", model.CategoryDairy, 0.30),
		ing("Curry leaves", "a few", model.CategoryHerbs, 0.10),
		ing("Mustard seeds", "¼ tsp", model.CategoryHerbs, 0.10),
		ing("Turmeric powder", "pinch", model.CategoryHerbs, 0.05),
		ing("Chilli", "1 small (optional)", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Cook frozen prata on a hot pan until golden and crispy on both sides.",
		"Simmer dhal with onion, turmeric, curry leaves and mustard seeds.",
		"Finish dhal with a drizzle of ghee.",
		"Serve prata with dhal on the side.",
	},
}

var overnightOats = model.Component{
	ID:          "overnight-oats",
	Name:        "Overnight Oats with Fruit",
	Role:        model.RoleBreakfast,
	Cuisine:     model.CuisineWestern,
	TotalCost:   1.20,
	Nutrition:   model.Nutrition{Calories: 310, Protein: 10, Carbs: 52, Fat: 6, Fibre: 6},
	PrepMins:    5,
	CookMins:    0,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Rolled oats", "60g", model.CategoryGrains, 0.25),
		ing("Milk or oat milk", "150ml", model.CategoryDairy, 0.35),
		ing("Banana", "½", model.CategoryVegetables, 0.25),
		ing("Mixed berries", "30g", model.CategoryVegetables, 0.20),
		ing("Honey", "1 tsp", model.CategoryPantry, 0.10),
		ing("Chia seeds", "1 tsp", model.CategoryPantry, 0.05),
	},
	Instructions: []string{
		"Mix oats, milk and chia seeds in a jar.",
		"Stir in honey.",
		"Refrigerate overnight (at least 6 hours).",
		"Top with fresh banana and berries before serving.",
	},
}

var congee = model.Component{
	ID:          "congee",
	Name:        "Congee with Century Egg",
	Role:        model.RoleBreakfast,
	Cuisine:     model.CuisineChinese,
	TotalCost:   2.50,
	Nutrition:   model.Nutrition{Calories: 280, Protein: 11, Carbs: 48, Fat: 5, Fibre: 2},
	PrepMins:    5,
	CookMins:    35,
	Difficulty:  model.Easy,
	KidFriendly: false,
	Ingredients: []model.Ingredient{
		ing("Jasmine rice", "50g dry", model.CategoryGrains, 0.15),
		ing("Century egg", "1", model.CategoryDairy, 1.10),
		ing("Salted egg yolk", "1", model.CategoryDairy, 0.40),
		ing("Ginger", "3 slices", model.CategoryHerbs, 0.10),
		ing("Spring onion", "1 stalk", model.CategoryVegetables, 0.05),
		ing("Sesame oil", "½ tsp", model.CategoryPantry, 0.05),
		ing("White pepper", "pinch", model.CategoryHerbs, 0.05),
		ing("Chicken stock", "500ml", model.CategoryPantry, 0.60),
	},
	Instructions: []string{
		"Simmer rice in chicken stock 30 min, stirring occasionally, until thick and creamy.",
		"Quarter century egg and crumble salted egg yolk.",
		"Add ginger slices while cooking.",
		"Top with century egg, salted yolk, spring onion, sesame oil and white pepper.",
	},
}

var friedBeehoonBreakfast = model.Component{
	ID:          "fried-beehoon-breakfast",
	Name:        "Fried Bee Hoon",
	Role:        model.RoleBreakfast,
	Cuisine:     model.CuisineChinese,
	TotalCost:   2.50,
	Nutrition:   model.Nutrition{Calories: 350, Protein: 10, Carbs: 55, Fat: 10, Fibre: 2},
	PrepMins:    10,
	CookMins:    15,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Dried bee hoon", "80g", model.CategoryGrains, 1.65),
		ing("Egg", "1", model.CategoryDairy, 0.30),
		ing("Cabbage", "60g shredded", model.CategoryVegetables, 0.20),
		ing("Carrot", "30g julienned", model.CategoryVegetables, 0.10),
		ing("Soy sauce", "1 tbsp", model.CategoryPantry, 0.05),
		ing("Sesame oil", "½ tsp", model.CategoryPantry, 0.05),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Garlic", "2 cloves", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Soak bee hoon in warm water 10 min, drain.",
		"Stir-fry garlic in oil, add egg and scramble.",
		"Add cabbage and carrot, fry 2 min.",
		"Add bee hoon, soy sauce and sesame oil. Toss 3 min on high heat.",
	},
}

// Proteins

var steamedFish = model.Component{
	ID:          "steamed-fish",
	Name:        "Steamed Fish with Ginger & Soy",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineChinese,
	TotalCost:   4.00,
	Nutrition:   model.Nutrition{Calories: 180, Protein: 28, Carbs: 3, Fat: 6, Fibre: 0},
	PrepMins:    10,
	CookMins:    12,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Fish fillet (snapper or tilapia)", "400g", model.CategoryProteins, 3.50),
		ing("Ginger", "3 slices", model.CategoryHerbs, 0.10),
		ing("Soy sauce", "2 tbsp", model.CategoryPantry, 0.10),
		ing("Sesame oil", "1 tsp", model.CategoryPantry, 0.10),
		ing("Spring onion", "2 stalks", model.CategoryVegetables, 0.10),
		ing("Cooking oil", "1 tbsp (for pouring)", model.CategoryPantry, 0.10),
	},
	Instructions: []string{
		"Score fish with shallow cuts, rub with a pinch of salt.",
		"Place ginger slices on fish and steam over boiling water 10–12 min.",
		"Drain excess liquid, pour soy sauce and sesame oil over fish.",
		"Heat oil until smoking, pour over fish and spring onion to sizzle.",
	},
}

var sambalChicken = model.Component{
	ID:          "sambal-chicken",
	Name:        "Sambal Chicken",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineMalay,
	TotalCost:   3.50,
	Nutrition:   model.Nutrition{Calories: 280, Protein: 32, Carbs: 8, Fat: 13, Fibre: 2},
	PrepMins:    10,
	CookMins:    20,
	Difficulty:  model.Medium,
	KidFriendly: false,
	Ingredients: []model.Ingredient{
		ing("Chicken thigh", "350g", model.CategoryProteins, 2.00),
		ing("Sambal paste", "3 tbsp", model.CategoryPantry, 0.50),
		ing("Onion", "1 medium", model.CategoryVegetables, 0.30),
		ing("Tomato", "1", model.CategoryVegetables, 0.30),
		ing("Oil", "2 tbsp", model.CategoryPantry, 0.20),
		ing("Sugar", "½ tsp", model.CategoryPantry, 0.05),
		ing("Salt", "to taste", model.CategoryHerbs, 0.05),
		ing("Lime", "½", model.CategoryVegetables, 0.10),
	},
	Instructions: []string{
		"Marinate chicken in ½ the sambal paste 15 min.",
		"Fry onion in oil until soft, add remaining sambal and fry 3 min.",
		"Add chicken and cook 15 min until cooked through.",
		"Add tomato, season with sugar and salt. Squeeze lime before serving.",
	},
}

var braisedPorkBelly = model.Component{
	ID:          "braised-pork-belly",
	Name:        "Braised Pork Belly",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineChinese,
	TotalCost:   4.50,
	Nutrition:   model.Nutrition{Calories: 380, Protein: 22, Carbs: 10, Fat: 28, Fibre: 0},
	PrepMins:    10,
	CookMins:    60,
	Difficulty:  model.Medium,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Pork belly", "350g", model.CategoryProteins, 3.75),
		ing("Soy sauce", "3 tbsp", model.CategoryPantry, 0.20),
		ing("Dark soy sauce", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Oyster sauce", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Sugar", "1 tbsp", model.CategoryPantry, 0.05),
		ing("Garlic", "4 cloves", model.CategoryHerbs, 0.10),
		ing("Star anise", "2", model.CategoryHerbs, 0.10),
		ing("Cinnamon stick", "1 small", model.CategoryHerbs, 0.10),
	},
	Instructions: []string{
		"Blanch pork belly in boiling water 5 min, drain and cut into chunks.",
		"Fry garlic until fragrant, add pork and brown all sides.",
		"Add soy sauces, oyster sauce, sugar, star anise and cinnamon.",
		"Add water to cover, simmer 45–60 min until tender and sauce thickens.",
	},
}

var prawnOmelette = model.Component{
	ID:          "prawn-omelette",
	Name:        "Prawn Omelette",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineChinese,
	TotalCost:   4.00,
	Nutrition:   model.Nutrition{Calories: 220, Protein: 20, Carbs: 4, Fat: 14, Fibre: 0},
	PrepMins:    10,
	CookMins:    10,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Prawns", "150g peeled", model.CategoryProteins, 2.60),
		ing("Eggs", "3", model.CategoryDairy, 0.90),
		ing("Spring onion", "2 stalks", model.CategoryVegetables, 0.10),
		ing("Soy sauce", "1 tsp", model.CategoryPantry, 0.05),
		ing("Sesame oil", "½ tsp", model.CategoryPantry, 0.05),
		ing("Oil", "2 tbsp", model.CategoryPantry, 0.20),
		ing("White pepper", "pinch", model.CategoryHerbs, 0.05),
		ing("Salt", "to taste", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Beat eggs with soy sauce, sesame oil and white pepper.",
		"Stir-fry prawns until pink, about 2 min. Remove.",
		"Pour egg mixture into hot oiled pan.",
		"Add prawns and spring onion, fold omelette when edges set.",
	},
}

var tofuMincedPork = model.Component{
	ID:          "tofu-minced-pork",
	Name:        "Tofu & Minced Pork",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineChinese,
	TotalCost:   3.50,
	Nutrition:   model.Nutrition{Calories: 240, Protein: 18, Carbs: 6, Fat: 14, Fibre: 1},
	PrepMins:    10,
	CookMins:    15,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Firm tofu", "300g", model.CategoryProteins, 0.80),
		ing("Minced pork", "150g", model.CategoryProteins, 2.20),
		ing("Soy sauce", "2 tbsp", model.CategoryPantry, 0.10),
		ing("Oyster sauce", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Garlic", "3 cloves", model.CategoryHerbs, 0.10),
		ing("Ginger", "1 tsp minced", model.CategoryHerbs, 0.05),
		ing("Spring onion", "2 stalks", model.CategoryVegetables, 0.10),
		ing("Cornstarch", "1 tsp", model.CategoryPantry, 0.05),
	},
	Instructions: []string{
		"Cut tofu into cubes, gently pan-fry until golden on edges.",
		"Fry garlic and ginger, add minced pork and cook until browned.",
		"Add tofu, soy sauce and oyster sauce. Toss gently.",
		"Thicken with cornstarch slurry. Top with spring onion.",
	},
}

var sweetSourPork = model.Component{
	ID:          "sweet-sour-pork",
	Name:        "Sweet & Sour Pork",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineChinese,
	TotalCost:   5.00,
	Nutrition:   model.Nutrition{Calories: 320, Protein: 24, Carbs: 22, Fat: 14, Fibre: 1},
	PrepMins:    15,
	CookMins:    20,
	Difficulty:  model.Medium,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Pork shoulder", "300g", model.CategoryProteins, 3.00),
		ing("Pineapple chunks", "80g", model.CategoryVegetables, 0.50),
		ing("Bell pepper", "½", model.CategoryVegetables, 0.40),
		ing("Tomato ketchup", "3 tbsp", model.CategoryPantry, 0.20),
		ing("Vinegar", "2 tbsp", model.CategoryPantry, 0.10),
		ing("Sugar", "2 tbsp", model.CategoryPantry, 0.10),
		ing("Cornstarch", "2 tbsp (for batter)", model.CategoryPantry, 0.10),
		ing("Egg", "1", model.CategoryDairy, 0.30),
		ing("Oil", "for frying", model.CategoryPantry, 0.30),
	},
	Instructions: []string{
		"Cut pork into cubes, coat in egg and cornstarch batter.",
		"Deep-fry pork until golden. Drain on paper.",
		"Mix ketchup, vinegar and sugar for sauce. Simmer 2 min.",
		"Toss pork, pineapple and pepper in sauce. Serve immediately.",
	},
}

var chickenCurry = model.Component{
	ID:          "chicken-curry",
	Name:        "Chicken & Potato Curry",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineIndian,
	TotalCost:   4.00,
	Nutrition:   model.Nutrition{Calories: 340, Protein: 28, Carbs: 20, Fat: 16, Fibre: 3},
	PrepMins:    15,
	CookMins:    35,
	Difficulty:  model.Medium,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Chicken drumsticks", "4 pieces (~350g)", model.CategoryProteins, 2.00),
		ing("Potato", "2 medium", model.CategoryVegetables, 0.40),
		ing("Curry powder", "2 tbsp", model.CategoryHerbs, 0.20),
		ing("Coconut milk", "200ml", model.CategoryDairy, 0.60),
		ing("Onion", "1 large", model.CategoryVegetables, 0.30),
		ing("Garlic", "4 cloves", model.CategoryHerbs, 0.10),
		ing("Ginger", "1 inch piece", model.CategoryHerbs, 0.10),
		ing("Oil", "2 tbsp", model.CategoryPantry, 0.20),
		ing("Salt", "to taste", model.CategoryHerbs, 0.05),
		ing("Curry leaves", "a few", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Blend onion, garlic and ginger into a paste.",
		"Fry paste with curry leaves in oil until fragrant, add curry powder.",
		"Add chicken, coat in spices and cook 5 min.",
		"Add potatoes, coconut milk and water. Simmer 30 min until tender.",
	},
}

var butterChicken = model.Component{
	ID:          "butter-chicken",
	Name:        "Butter Chicken",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineIndian,
	TotalCost:   4.00,
	Nutrition:   model.Nutrition{Calories: 320, Protein: 26, Carbs: 12, Fat: 18, Fibre: 1},
	PrepMins:    20,
	CookMins:    25,
	Difficulty:  model.Medium,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Chicken breast", "350g", model.CategoryProteins, 1.85),
		ing("Canned tomatoes", "200g", model.CategoryVegetables, 0.60),
		ing("Butter", "2 tbsp", model.CategoryDairy, 0.30),
		ing("Cream", "50ml", model.CategoryDairy, 0.40),
		ing("Garam masala", "1½ tsp", model.CategoryHerbs, 0.15),
		ing("Ginger-garlic paste", "1 tbsp", model.CategoryHerbs, 0.15),
		ing("Onion", "1 medium", model.CategoryVegetables, 0.30),
		ing("Yoghurt", "3 tbsp (marinade)", model.CategoryDairy, 0.20),
		ing("Turmeric", "½ tsp", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Marinate chicken in yoghurt, ginger-garlic, turmeric 30 min.",
		"Cook chicken in butter until slightly charred. Remove.",
		"Fry onion until golden, add tomatoes and garam masala. Simmer 10 min.",
		"Blend sauce smooth, add chicken back, stir in cream. Simmer 5 min.",
	},
}

var lemonHerbChicken = model.Component{
	ID:          "lemon-herb-chicken",
	Name:        "Lemon Herb Baked Chicken",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineWestern,
	TotalCost:   3.50,
	Nutrition:   model.Nutrition{Calories: 260, Protein: 34, Carbs: 2, Fat: 12, Fibre: 0},
	PrepMins:    10,
	CookMins:    35,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Chicken thigh (bone-in)", "400g (2 pieces)", model.CategoryProteins, 2.40),
		ing("Lemon", "1", model.CategoryVegetables, 0.40),
		ing("Garlic", "4 cloves", model.CategoryHerbs, 0.10),
		ing("Olive oil", "2 tbsp", model.CategoryPantry, 0.30),
		ing("Mixed herbs (rosemary, thyme)", "1 tsp each", model.CategoryHerbs, 0.20),
		ing("Salt and black pepper", "to taste", model.CategoryHerbs, 0.05),
		ing("Paprika", "½ tsp", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Mix olive oil, lemon juice, garlic, herbs and paprika.",
		"Coat chicken thoroughly, marinate 30 min if time allows.",
		"Bake at 200°C for 30–35 min until golden and juices run clear.",
		"Rest 5 min before serving with lemon wedges.",
	},
}

var teriyakiChicken = model.Component{
	ID:          "teriyaki-chicken",
	Name:        "Teriyaki Chicken",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineJapanese,
	TotalCost:   3.50,
	Nutrition:   model.Nutrition{Calories: 290, Protein: 30, Carbs: 14, Fat: 12, Fibre: 0},
	PrepMins:    10,
	CookMins:    15,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Chicken thigh (boneless)", "350g", model.CategoryProteins, 2.60),
		ing("Soy sauce", "3 tbsp", model.CategoryPantry, 0.15),
		ing("Mirin", "2 tbsp", model.CategoryPantry, 0.30),
		ing("Sake or rice wine", "1 tbsp", model.CategoryPantry, 0.20),
		ing("Sugar", "1 tbsp", model.CategoryPantry, 0.05),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Sesame seeds", "1 tsp", model.CategoryHerbs, 0.05),
		ing("Spring onion", "1 stalk", model.CategoryVegetables, 0.05),
	},
	Instructions: []string{
		"Mix soy sauce, mirin, sake and sugar for teriyaki sauce.",
		"Pan-fry chicken skin-down in oil 5 min until golden.",
		"Flip, pour sauce over and cook 8–10 min, basting frequently.",
		"Slice and garnish with sesame seeds and spring onion.",
	},
}

var friedEgg = model.Component{
	ID:          "fried-egg",
	Name:        "Fried Egg (2)",
	Role:        model.RoleProtein,
	Cuisine:     model.CuisineUniversal,
	TotalCost:   0.60,
	Nutrition:   model.Nutrition{Calories: 140, Protein: 12, Carbs: 1, Fat: 10, Fibre: 0},
	PrepMins:    2,
	CookMins:    5,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Eggs", "2", model.CategoryDairy, 0.50),
		ing("Oil", "1 tsp", model.CategoryPantry, 0.05),
		ing("Salt and pepper", "to taste", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Heat oil in pan over medium heat.",
		"Crack eggs in, fry sunny side up or flip for over easy.",
		"Season with salt and pepper.",
	},
}

// Vegetables

var kaiLanOyster = model.Component{
	ID:          "kai-lan-oyster",
	Name:        "Stir-Fry Kai Lan with Oyster Sauce",
	Role:        model.RoleVegetable,
	Cuisine:     model.CuisineChinese,
	TotalCost:   1.50,
	Nutrition:   model.Nutrition{Calories: 80, Protein: 3, Carbs: 8, Fat: 4, Fibre: 3},
	PrepMins:    5,
	CookMins:    8,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Kai lan (Chinese broccoli)", "200g", model.CategoryVegetables, 1.05),
		ing("Oyster sauce", "2 tbsp", model.CategoryPantry, 0.20),
		ing("Garlic", "3 cloves", model.CategoryHerbs, 0.10),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Sesame oil", "½ tsp", model.CategoryPantry, 0.05),
		ing("Water", "2 tbsp", model.CategoryPantry, 0.00),
	},
	Instructions: []string{
		"Wash and trim kai lan, blanch in boiling water 2 min. Drain.",
		"Stir-fry garlic in oil until fragrant.",
		"Add kai lan, oyster sauce and water. Toss 2 min on high heat.",
		"Finish with sesame oil.",
	},
}

var spinachGarlic = model.Component{
	ID:          "spinach-garlic",
	Name:        "Spinach with Garlic",
	Role:        model.RoleVegetable,
	Cuisine:     model.CuisineChinese,
	TotalCost:   1.20,
	Nutrition:   model.Nutrition{Calories: 60, Protein: 3, Carbs: 6, Fat: 3, Fibre: 3},
	PrepMins:    3,
	CookMins:    5,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Baby spinach", "200g", model.CategoryVegetables, 0.85),
		ing("Garlic", "4 cloves", model.CategoryHerbs, 0.10),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Salt", "to taste", model.CategoryHerbs, 0.05),
		ing("Oyster sauce", "1 tbsp", model.CategoryPantry, 0.10),
	},
	Instructions: []string{
		"Slice garlic thinly.",
		"Heat oil in wok until smoking, fry garlic until golden.",
		"Add spinach, toss quickly on high heat 1–2 min until wilted.",
		"Season with salt and a drizzle of oyster sauce.",
	},
}

var mixedVeg = model.Component{
	ID:          "mixed-veg",
	Name:        "Stir-Fry Mixed Vegetables",
	Role:        model.RoleVegetable,
	Cuisine:     model.CuisineChinese,
	TotalCost:   1.50,
	Nutrition:   model.Nutrition{Calories: 90, Protein: 3, Carbs: 12, Fat: 3, Fibre: 4},
	PrepMins:    8,
	CookMins:    8,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Broccoli", "100g florets", model.CategoryVegetables, 0.60),
		ing("Carrot", "1 medium sliced", model.CategoryVegetables, 0.20),
		ing("Snow peas", "80g", model.CategoryVegetables, 0.40),
		ing("Garlic", "2 cloves", model.CategoryHerbs, 0.05),
		ing("Oyster sauce", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Salt", "to taste", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Blanch broccoli and carrot in salted boiling water 2 min. Drain.",
		"Stir-fry garlic in hot oil until fragrant.",
		"Add all vegetables and stir-fry 3 min on high heat.",
		"Season with oyster sauce and salt.",
	},
}

var tofuVeg = model.Component{
	ID:          "tofu-veg",
	Name:        "Silken Tofu with Veg",
	Role:        model.RoleVegetable,
	Cuisine:     model.CuisineChinese,
	TotalCost:   1.50,
	Nutrition:   model.Nutrition{Calories: 100, Protein: 6, Carbs: 8, Fat: 5, Fibre: 2},
	PrepMins:    5,
	CookMins:    10,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Silken tofu", "250g", model.CategoryProteins, 0.55),
		ing("Mushrooms", "80g sliced", model.CategoryVegetables, 0.40),
		ing("Bok choy", "100g", model.CategoryVegetables, 0.30),
		ing("Soy sauce", "1 tbsp", model.CategoryPantry, 0.05),
		ing("Sesame oil", "½ tsp", model.CategoryPantry, 0.05),
		ing("Ginger", "2 slices", model.CategoryHerbs, 0.05),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
	},
	Instructions: []string{
		"Steam silken tofu gently 5 min.",
		"Stir-fry ginger and mushrooms in oil until soft.",
		"Add bok choy and toss 2 min.",
		"Pour vegetables over tofu, drizzle with soy sauce and sesame oil.",
	},
}

var cucumberTomato = model.Component{
	ID:          "cucumber-tomato",
	Name:        "Cucumber & Tomato Salad",
	Role:        model.RoleVegetable,
	Cuisine:     model.CuisineUniversal,
	TotalCost:   0.80,
	Nutrition:   model.Nutrition{Calories: 40, Protein: 1, Carbs: 8, Fat: 0, Fibre: 2},
	PrepMins:    5,
	CookMins:    0,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Cucumber", "1 medium", model.CategoryVegetables, 0.40),
		ing("Cherry tomatoes", "10 pieces", model.CategoryVegetables, 0.23),
		ing("Rice vinegar", "1 tbsp", model.CategoryPantry, 0.05),
		ing("Sesame oil", "½ tsp", model.CategoryPantry, 0.05),
		ing("Salt", "pinch", model.CategoryHerbs, 0.05),
		ing("Sugar", "pinch", model.CategoryPantry, 0.02),
	},
	Instructions: []string{
		"Slice cucumber and halve tomatoes.",
		"Toss with rice vinegar, sesame oil, salt and a pinch of sugar.",
		"Let sit 5 min before serving so flavours meld.",
	},
}

var cabbageStirFry = model.Component{
	ID:          "cabbage-stir-fry",
	Name:        "Stir-Fry Cabbage",
	Role:        model.RoleVegetable,
	Cuisine:     model.CuisineChinese,
	TotalCost:   1.00,
	Nutrition:   model.Nutrition{Calories: 70, Protein: 2, Carbs: 9, Fat: 3, Fibre: 3},
	PrepMins:    5,
	CookMins:    8,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Cabbage", "250g shredded", model.CategoryVegetables, 0.50),
		ing("Garlic", "3 cloves", model.CategoryHerbs, 0.10),
		ing("Dried shrimp", "1 tbsp (optional)", model.CategoryProteins, 0.20),
		ing("Soy sauce", "1 tbsp", model.CategoryPantry, 0.05),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Salt", "to taste", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Shred cabbage finely.",
		"Fry garlic and dried shrimp in hot oil until fragrant.",
		"Add cabbage and toss on high heat 3–4 min.",
		"Season with soy sauce and salt.",
	},
}

var longBeans = model.Component{
	ID:          "long-beans",
	Name:        "Stir-Fry Long Beans",
	Role:        model.RoleVegetable,
	Cuisine:     model.CuisineChinese,
	TotalCost:   1.20,
	Nutrition:   model.Nutrition{Calories: 75, Protein: 3, Carbs: 10, Fat: 3, Fibre: 4},
	PrepMins:    5,
	CookMins:    10,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Long beans", "200g cut into 5cm pieces", model.CategoryVegetables, 0.85),
		ing("Garlic", "3 cloves", model.CategoryHerbs, 0.10),
		ing("Dried shrimp paste (belacan)", "½ tsp", model.CategoryPantry, 0.05),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Soy sauce", "1 tbsp", model.CategoryPantry, 0.05),
		ing("Chilli", "1 small (optional)", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Trim and cut long beans into 5cm pieces.",
		"Stir-fry garlic and belacan in oil until fragrant.",
		"Add long beans, fry on high heat 5–6 min until tender-crisp.",
		"Season with soy sauce. Add chilli for adults.",
	},
}

var bakChoy = model.Component{
	ID:          "bak-choy",
	Name:        "Stir-Fry Bak Choy",
	Role:        model.RoleVegetable,
	Cuisine:     model.CuisineChinese,
	TotalCost:   1.20,
	Nutrition:   model.Nutrition{Calories: 55, Protein: 3, Carbs: 7, Fat: 2, Fibre: 3},
	PrepMins:    3,
	CookMins:    6,
	Difficulty:  model.Easy,
	KidFriendly: true,
	Ingredients: []model.Ingredient{
		ing("Baby bak choy", "300g halved", model.CategoryVegetables, 0.80),
		ing("Garlic", "3 cloves", model.CategoryHerbs, 0.10),
		ing("Oyster sauce", "1.5 tbsp", model.CategoryPantry, 0.15),
		ing("Oil", "1 tbsp", model.CategoryPantry, 0.10),
		ing("Salt", "to taste", model.CategoryHerbs, 0.05),
	},
	Instructions: []string{
		"Halve bak choy lengthwise, rinse well.",
		"Blanch in salted boiling water 1 min. Drain.",
		"Stir-fry garlic in oil until golden.",
		"Add bak choy and oyster sauce. Toss 2 min. Serve immediately.",
	},
}

var components = []*model.Component{
	&steamedWhiteRice,
	&steamedBrownRice,
	&plainBeehoon,
	&plainNoodles,
	&wholemealBread,
	&kayaToastEggs,
	&breadAndEggs,
	&nasiLemakSimple,
	&rotiPrataDhal,
	&overnightOats,
	&congee,
	&friedBeehoonBreakfast,
	&steamedFish,
	&sambalChicken,
	&braisedPorkBelly,
	&prawnOmelette,
	&tofuMincedPork,
	&sweetSourPork,
	&chickenCurry,
	&butterChicken,
	&lemonHerbChicken,
	&teriyakiChicken,
	&friedEgg,
	&kaiLanOyster,
	&spinachGarlic,
	&mixedVeg,
	&tofuVeg,
	&cucumberTomato,
	&cabbageStirFry,
	&longBeans,
	&bakChoy,
}

func ing(name, quantity string, category model.IngredientCategory, cost float64) model.Ingredient {
	return model.Ingredient{Name: name, Quantity: quantity, Category: category, Cost: cost}
}
