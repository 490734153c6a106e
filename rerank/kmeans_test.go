package rerank

import "testing"

func TestKMeansSeparatesClusters(t *testing.T) {
	vectors := [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
	}
	assign := kMeans(vectors, 2, 10)
	if len(assign) != len(vectors) {
		t.Fatalf("got %d assignments, want %d", len(assign), len(vectors))
	}

	if assign[0] != assign[1] || assign[1] != assign[2] {
		t.Errorf("first group split across clusters: %v", assign[:3])
	}
	if assign[3] != assign[4] || assign[4] != assign[5] {
		t.Errorf("second group split across clusters: %v", assign[3:])
	}
	if assign[0] == assign[3] {
		t.Errorf("groups merged into one cluster: %v", assign)
	}
}

func TestKMeansKLargerThanInput(t *testing.T) {
	vectors := [][]float64{{1, 1}, {2, 2}}
	assign := kMeans(vectors, 10, 10)
	if len(assign) != 2 {
		t.Fatalf("got %d assignments, want 2", len(assign))
	}
	for _, c := range assign {
		if c < 0 || c >= 2 {
			t.Errorf("cluster index %d out of range", c)
		}
	}
}

func TestKMeansEmptyInput(t *testing.T) {
	if got := kMeans(nil, 3, 10); got != nil {
		t.Errorf("kMeans(nil) = %v, want nil", got)
	}
	if got := kMeans([][]float64{{1}}, 0, 10); got != nil {
		t.Errorf("kMeans(k=0) = %v, want nil", got)
	}
}
