package rerank

// kMeans 对特征向量做固定轮次的 k-means 聚类，返回每个向量所属的簇编号。
// 初始质心取前 k 个向量，距离用欧氏距离平方，迭代固定轮次后停止。
// 输入为空或 k<=0 时返回 nil。
func kMeans(vectors [][]float64, k, iterations int) []int {
	if len(vectors) == 0 || k <= 0 {
		return nil
	}
	if k > len(vectors) {
		k = len(vectors)
	}

	dim := len(vectors[0])
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = append([]float64(nil), vectors[i]...)
	}

	assign := make([]int, len(vectors))
	for iter := 0; iter < iterations; iter++ {
		// 指派：每个向量归入最近质心
		for i, v := range vectors {
			best, bestDist := 0, squaredDistance(v, centroids[0])
			for c := 1; c < k; c++ {
				if d := squaredDistance(v, centroids[c]); d < bestDist {
					best, bestDist = c, d
				}
			}
			assign[i] = best
		}

		// 更新：质心取簇内均值，空簇保持原质心
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, v := range vectors {
			c := assign[i]
			counts[c]++
			for d := 0; d < dim && d < len(v); d++ {
				sums[c][d] += v[d]
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for d := 0; d < dim; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return assign
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := 0; i < len(a) && i < len(b); i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
