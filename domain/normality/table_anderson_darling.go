package normality

// Anderson-Darling critical values of A² (mean and variance estimated) for
// 4 <= n <= 20 plus anchor rows 25 and 30, obtained from the Case 3
// asymptotic points (Stephens, 1974) divided by the D'Agostino & Stephens
// (1986) factor 1 + 0.75/n + 2.25/n². Untabulated sizes strictly between
// anchors snap upward; there is no formula past 30, so large samples are
// judged by p-value only.
var andersonDarlingTable = newCriticalValueTable(
	AndersonDarling,
	append(sizeRange(4, 20), 25, 30),
	map[float64][]float64{
		0.01: {
			0.822, 0.881, 0.920, 0.947, 0.967, 0.983, 0.995, 1.005, 1.013, 1.020,
			1.025, 1.030, 1.034, 1.038, 1.041, 1.044, 1.047, 1.057, 1.063,
		},
		0.025: {
			0.691, 0.740, 0.773, 0.796, 0.813, 0.826, 0.836, 0.845, 0.851, 0.857,
			0.862, 0.866, 0.870, 0.873, 0.875, 0.878, 0.880, 0.888, 0.893,
		},
		0.05: {
			0.593, 0.635, 0.663, 0.683, 0.697, 0.708, 0.717, 0.724, 0.730, 0.735,
			0.739, 0.742, 0.746, 0.748, 0.751, 0.753, 0.754, 0.761, 0.766,
		},
		0.10: {
			0.494, 0.529, 0.552, 0.569, 0.581, 0.590, 0.598, 0.604, 0.608, 0.613,
			0.616, 0.619, 0.621, 0.624, 0.626, 0.627, 0.629, 0.635, 0.638,
		},
		0.15: {
			0.434, 0.465, 0.485, 0.500, 0.510, 0.518, 0.525, 0.530, 0.534, 0.538,
			0.541, 0.543, 0.546, 0.548, 0.549, 0.551, 0.552, 0.557, 0.561,
		},
	},
	[]Gap{
		{Low: 20, High: 25, HighInclusive: false, Anchor: 25},
		{Low: 25, High: 30, HighInclusive: false, Anchor: 30},
	},
	newExtrapolation(ExtrapolateNone, nil),
)
