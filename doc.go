// Package cifra is the root of the Cifra Carmesim solver: given an L×C box
// of crystals, each with a brightness and connections to its right, upper,
// left and lower neighbours, it picks one column selection per row that
// maximises total brightness while never using two connected crystals
// together.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/       Cell, connection mask and the L×C crystal box
//	solver/     row-configuration bitmask DP, memo arena and reconstruction
//	puzzleio/   "L C N" + N records input, "count brightness" + cells output
//	render/     HTML chart of a solved box (go-echarts)
//	cmd/cifra   command-line front end (cobra, logrus)
//
// Quick ASCII example:
//
//	  5 ─ 3        (1,1) is right-connected to (1,2)
//	  4   2
//
//	answer: 3 crystals, brightness 11 → (2,2) (2,1) (1,1)
//
//	go install github.com/gs-coelho/cifra-carmesim/cmd/cifra@latest
package cifra
