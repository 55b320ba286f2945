package normality

// Abdi & Molin (2007) critical values of the Lilliefors D for 4 <= n <= 50,
// transcribed from the published Monte Carlo table. Beyond 50 the table is
// extended with c / ((0.83+n)/sqrt(n) - 0.01).
var abdiMolinTable = newCriticalValueTable(
	AbdiMolin,
	sizeRange(4, 50),
	map[float64][]float64{
		0.01: {
			0.4129, 0.3959, 0.3728, 0.3504, 0.3331, 0.3162, 0.3037, 0.2905,
			0.2812, 0.2714, 0.2627, 0.2545, 0.2477, 0.2408, 0.2345, 0.2285,
			0.2226, 0.2190, 0.2141, 0.2090, 0.2053, 0.2010, 0.1985, 0.1941,
			0.1911, 0.1886, 0.1848, 0.1820, 0.1798, 0.1770, 0.1747, 0.1720,
			0.1695, 0.1677, 0.1653, 0.1634, 0.1616, 0.1599, 0.1573, 0.1556,
			0.1542, 0.1525, 0.1512, 0.1499, 0.1476, 0.1463, 0.1457,
		},
		0.05: {
			0.3754, 0.3427, 0.3245, 0.3041, 0.2875, 0.2744, 0.2616, 0.2506,
			0.2426, 0.2337, 0.2257, 0.2196, 0.2128, 0.2071, 0.2018, 0.1965,
			0.1920, 0.1881, 0.1840, 0.1798, 0.1766, 0.1726, 0.1699, 0.1665,
			0.1641, 0.1614, 0.1590, 0.1559, 0.1542, 0.1518, 0.1497, 0.1478,
			0.1454, 0.1436, 0.1421, 0.1402, 0.1386, 0.1373, 0.1353, 0.1339,
			0.1322, 0.1309, 0.1293, 0.1282, 0.1269, 0.1256, 0.1246,
		},
		0.10: {
			0.3456, 0.3188, 0.2982, 0.2802, 0.2649, 0.2522, 0.2410, 0.2306,
			0.2228, 0.2147, 0.2077, 0.2016, 0.1956, 0.1902, 0.1852, 0.1803,
			0.1764, 0.1726, 0.1690, 0.1650, 0.1619, 0.1589, 0.1562, 0.1533,
			0.1509, 0.1483, 0.1460, 0.1432, 0.1415, 0.1392, 0.1373, 0.1356,
			0.1336, 0.1320, 0.1303, 0.1288, 0.1275, 0.1258, 0.1244, 0.1228,
			0.1216, 0.1204, 0.1189, 0.1180, 0.1165, 0.1153, 0.1142,
		},
		0.15: {
			0.3216, 0.3027, 0.2816, 0.2641, 0.2502, 0.2382, 0.2273, 0.2179,
			0.2101, 0.2025, 0.1959, 0.1899, 0.1843, 0.1794, 0.1747, 0.1700,
			0.1666, 0.1629, 0.1592, 0.1555, 0.1527, 0.1498, 0.1472, 0.1448,
			0.1423, 0.1398, 0.1378, 0.1353, 0.1336, 0.1314, 0.1295, 0.1278,
			0.1260, 0.1245, 0.1230, 0.1214, 0.1204, 0.1186, 0.1172, 0.1159,
			0.1148, 0.1134, 0.1123, 0.1113, 0.1098, 0.1089, 0.1079,
		},
		0.20: {
			0.3027, 0.2893, 0.2694, 0.2521, 0.2387, 0.2273, 0.2171, 0.2080,
			0.2004, 0.1932, 0.1869, 0.1811, 0.1758, 0.1711, 0.1666, 0.1624,
			0.1589, 0.1553, 0.1517, 0.1484, 0.1458, 0.1429, 0.1406, 0.1381,
			0.1358, 0.1334, 0.1315, 0.1291, 0.1274, 0.1254, 0.1236, 0.1220,
			0.1203, 0.1188, 0.1174, 0.1159, 0.1147, 0.1131, 0.1119, 0.1106,
			0.1095, 0.1083, 0.1071, 0.1062, 0.1047, 0.1040, 0.1030,
		},
	},
	nil,
	newExtrapolation(ExtrapolateAbdiMolin, map[float64]float64{
		0.01: 1.035,
		0.05: 0.895,
		0.10: 0.819,
		0.15: 0.775,
		0.20: 0.741,
	}),
)
