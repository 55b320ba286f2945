package normality

// Lilliefors (1967) critical values of D with mean and variance estimated
// from the sample. Rows 4-20 are exact; 25 and 30 anchor the gaps above 20.
// Beyond 30 the asymptotic c/sqrt(n) applies.
var lillieforsTable = newCriticalValueTable(
	Lilliefors,
	append(sizeRange(4, 20), 25, 30),
	map[float64][]float64{
		0.01: {
			0.417, 0.405, 0.364, 0.348, 0.331, 0.311, 0.294, 0.284, 0.275, 0.268,
			0.261, 0.257, 0.250, 0.245, 0.239, 0.235, 0.231, 0.200, 0.187,
		},
		0.05: {
			0.381, 0.337, 0.319, 0.300, 0.285, 0.271, 0.258, 0.249, 0.242, 0.234,
			0.227, 0.220, 0.213, 0.206, 0.200, 0.195, 0.190, 0.173, 0.161,
		},
		0.10: {
			0.352, 0.315, 0.294, 0.276, 0.261, 0.249, 0.239, 0.230, 0.223, 0.214,
			0.207, 0.201, 0.195, 0.189, 0.184, 0.179, 0.174, 0.158, 0.144,
		},
		0.15: {
			0.319, 0.299, 0.277, 0.258, 0.244, 0.233, 0.224, 0.217, 0.212, 0.202,
			0.194, 0.187, 0.182, 0.177, 0.173, 0.169, 0.166, 0.147, 0.136,
		},
		0.20: {
			0.300, 0.285, 0.265, 0.247, 0.233, 0.223, 0.215, 0.206, 0.199, 0.190,
			0.183, 0.177, 0.173, 0.169, 0.166, 0.163, 0.160, 0.142, 0.131,
		},
	},
	[]Gap{
		{Low: 20, High: 25, HighInclusive: true, Anchor: 25},
		{Low: 25, High: 30, HighInclusive: true, Anchor: 30},
	},
	newExtrapolation(ExtrapolateInverseSqrt, map[float64]float64{
		0.01: 1.031,
		0.05: 0.866,
		0.10: 0.805,
		0.15: 0.768,
		0.20: 0.736,
	}),
)
