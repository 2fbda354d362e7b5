// SPDX-License-Identifier: MIT

// Package scenario reads a relief scenario from TOML: the city network, the
// registered beneficiaries, the ranking policy and the supply source.
//
//	source      = "Dhaka"
//	destination = "Sylhet"
//	cities      = ["Dhaka", "Sylhet", "Khulna"]
//
//	[policy]
//	child_max_age = 12
//	elder_min_age = 60
//
//	[[roads]]
//	from = "Dhaka"
//	to = "Sylhet"
//	distance = 240
//
//	[[people]]
//	name = "Amy"
//	age = 8
//	gender = "F"
//	city = "Sylhet"
//
// Validate reports every problem at once. BuildGraph turns a valid scenario
// into a *core.Graph with cities bound in declaration order.
package scenario
