package parameter

// Animation Clips
const (
	// RecoverClipDuration is how long the get-up clip plays before returning to idle (s)
	RecoverClipDuration = 0.6
)

// Keeper Rig (local space, meters)
const (
	// RigShoulderHeight is the standing shoulder height
	RigShoulderHeight = 1.5

	// RigDiveShoulderLow is the shoulder height at the bottom of a low dive
	RigDiveShoulderLow = 0.35

	// RigShoulderHalfWidth is the lateral offset of each shoulder from the spine
	RigShoulderHalfWidth = 0.2

	// RigArmLength bounds how far a hand can be placed from its shoulder
	RigArmLength = 0.75

	// RigDiveLateralShift is how far the torso leans toward the dive side
	RigDiveLateralShift = 0.6

	// RigRestHandDrop is how far below the shoulder a resting hand hangs
	RigRestHandDrop = 0.45

	// RigRestHandForward is how far ahead of the body a resting hand sits
	RigRestHandForward = 0.2
)
