package normality

// One-sample Kolmogorov-Smirnov critical values of D (Massey, 1951).
// Rows 1-20 are exact; 25, 30 and 35 are anchors for the staged gaps above
// 20. Beyond 35 the asymptotic c/sqrt(n) applies.
var kolmogorovSmirnovTable = newCriticalValueTable(
	KolmogorovSmirnov,
	append(sizeRange(1, 20), 25, 30, 35),
	map[float64][]float64{
		0.01: {
			0.995, 0.929, 0.828, 0.733, 0.669, 0.618, 0.577, 0.543, 0.514, 0.490,
			0.468, 0.450, 0.433, 0.418, 0.404, 0.392, 0.381, 0.371, 0.363, 0.356,
			0.32, 0.29, 0.27,
		},
		0.05: {
			0.975, 0.842, 0.708, 0.624, 0.565, 0.521, 0.486, 0.457, 0.432, 0.410,
			0.391, 0.375, 0.361, 0.349, 0.338, 0.328, 0.318, 0.309, 0.301, 0.294,
			0.27, 0.24, 0.23,
		},
		0.10: {
			0.950, 0.776, 0.642, 0.564, 0.510, 0.470, 0.438, 0.411, 0.388, 0.368,
			0.352, 0.338, 0.325, 0.314, 0.304, 0.295, 0.286, 0.278, 0.272, 0.264,
			0.24, 0.22, 0.21,
		},
		0.15: {
			0.925, 0.726, 0.597, 0.525, 0.474, 0.436, 0.405, 0.381, 0.360, 0.342,
			0.326, 0.313, 0.302, 0.292, 0.283, 0.274, 0.266, 0.259, 0.252, 0.246,
			0.22, 0.20, 0.19,
		},
		0.20: {
			0.900, 0.684, 0.565, 0.494, 0.446, 0.410, 0.381, 0.358, 0.339, 0.322,
			0.307, 0.295, 0.284, 0.274, 0.266, 0.258, 0.250, 0.244, 0.237, 0.231,
			0.21, 0.19, 0.18,
		},
	},
	[]Gap{
		{Low: 20, High: 25, HighInclusive: true, Anchor: 25},
		{Low: 25, High: 30, HighInclusive: true, Anchor: 30},
		{Low: 30, High: 35, HighInclusive: true, Anchor: 35},
	},
	newExtrapolation(ExtrapolateInverseSqrt, map[float64]float64{
		0.01: 1.63,
		0.05: 1.36,
		0.10: 1.22,
		0.15: 1.14,
		0.20: 1.07,
	}),
)
