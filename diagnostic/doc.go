// SPDX-License-Identifier: MIT

// Package diagnostic decodes the submarine's binary diagnostic report:
// gamma/epsilon rates (power consumption) and oxygen generator / CO2
// scrubber ratings (life support).
package diagnostic
