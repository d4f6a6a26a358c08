// SPDX-License-Identifier: MIT

// Package dive pilots the submarine through a list of commands
// ("forward 5", "down 5", "up 3").
//
// Two interpretations exist:
//
//   - Pilot: down/up change Depth directly, forward changes Horizontal.
//   - PilotWithAim: down/up change Aim; forward moves Horizontal and
//     changes Depth by Aim × X.
//
// Both return a Position; Position.Product is the puzzle answer.
package dive
