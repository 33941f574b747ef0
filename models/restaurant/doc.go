// SPDX-License-Identifier: MIT

// Package restaurant provides the reference customer-happiness model.
//
// 🚀 What is it?
//
//	Three antecedents scored on [0,10] (speed, food_quality, ambience) and one
//	consequent (happiness, also [0,10]), each partitioned into three labels:
//
//	  speed         slow      average  fast
//	  food_quality  poor      average  excellent
//	  ambience      bad       okay     good
//	  happiness     unhappy   neutral  happy
//
//	The first label is trapmf[0 0 3 5], the second trimf[3 5 7], the third
//	trapmf[5 7 10 10]. Universes are sampled with step 1 unless the caller
//	overrides inference.WithResolution.
//
// 📜 Rules
//
//	r1: slow OR poor OR bad                 → unhappy
//	r2: average AND average AND okay        → neutral
//	r3: fast AND excellent AND good         → happy
//
// ✨ Usage
//
//	eng, err := restaurant.Build(inference.WithLogger(log))
//	score, err := eng.Compute(map[string]float64{
//		restaurant.Speed: 6, restaurant.FoodQuality: 8, restaurant.Ambience: 7,
//	}, restaurant.Happiness)
//	fmt.Println(restaurant.Category(score))
package restaurant
