// SPDX-License-Identifier: MIT

// Package beneficiary models disaster-affected people and ranks them by need.
//
// Ranking keys, most significant first:
//
//  1. Age group: children (age ≤ ChildMaxAge) before elders (age ≥ ElderMinAge)
//     before adults (everyone in between).
//  2. Gender: female before male.
//  3. Age: younger first among children, older first among elders and adults.
//  4. Name, ascending byte-wise.
//
// Rank uses a stable merge sort, so records equal on all four keys keep their
// input order. Thresholds live in a Policy value; DefaultPolicy() is 12/60.
package beneficiary
