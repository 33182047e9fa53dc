// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package testinfra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
)

// Tree is a numerical LightGBM regression tree. Internal node i splits on
// SplitFeature[i] at Threshold[i] and sends values <= threshold left. Child
// references below zero address leaves as ^leaf, the LightGBM convention.
type Tree struct {
	SplitFeature []int
	Threshold    []float64
	LeftChild    []int
	RightChild   []int
	LeafValue    []float64
}

// itemAvgPriceIdx is the position of item_avg_price in the ranking vector.
const itemAvgPriceIdx = 8

// PriceBucketTree scores items 0.1, 0.2, 0.3 and 0.4 for item_avg_price up to
// 20, up to 40, up to 60 and above 60.
func PriceBucketTree() Tree {
	return Tree{
		SplitFeature: []int{itemAvgPriceIdx, itemAvgPriceIdx, itemAvgPriceIdx},
		Threshold:    []float64{20, 40, 60},
		LeftChild:    []int{^0, ^1, ^2},
		RightChild:   []int{1, 2, ^3},
		LeafValue:    []float64{0.1, 0.2, 0.3, 0.4},
	}
}

// ConstantTree scores every vector the same, which makes every candidate tie.
func ConstantTree(v float64) Tree {
	return Tree{LeafValue: []float64{v}}
}

// ModelText renders a single-tree LightGBM text model over featureNames.
// A nil featureNames omits the feature_names header line.
func ModelText(nFeatures int, featureNames []string, tree Tree) string {
	block := treeBlock(tree)

	var b strings.Builder
	b.WriteString("tree\n")
	b.WriteString("version=v2\n")
	b.WriteString("num_class=1\n")
	b.WriteString("num_tree_per_iteration=1\n")
	b.WriteString("label_index=0\n")
	fmt.Fprintf(&b, "max_feature_idx=%d\n", nFeatures-1)
	b.WriteString("objective=lambdarank\n")
	if featureNames != nil {
		fmt.Fprintf(&b, "feature_names=%s\n", strings.Join(featureNames, " "))
	}
	fmt.Fprintf(&b, "feature_infos=%s\n", strings.TrimSpace(strings.Repeat("none ", nFeatures)))
	fmt.Fprintf(&b, "tree_sizes=%d\n", len(block))
	b.WriteString("\n")
	b.WriteString(block)
	b.WriteString("\n")
	b.WriteString("end of trees\n")
	return b.String()
}

// WriteModel writes ModelText for len(featureNames) features to path.
func WriteModel(t testing.TB, path string, featureNames []string, tree Tree) {
	t.Helper()

	text := ModelText(len(featureNames), featureNames, tree)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("write model %s: %v", path, err)
	}
}

func treeBlock(tree Tree) string {
	nLeaves := len(tree.LeafValue)

	var b strings.Builder
	b.WriteString("Tree=0\n")
	fmt.Fprintf(&b, "num_leaves=%d\n", nLeaves)
	b.WriteString("num_cat=0\n")
	if nLeaves > 1 {
		decision := make([]int, len(tree.SplitFeature))
		for i := range decision {
			decision[i] = 2
		}
		fmt.Fprintf(&b, "split_feature=%s\n", joinInts(tree.SplitFeature))
		fmt.Fprintf(&b, "split_gain=%s\n", joinFloats(ones(len(tree.SplitFeature))))
		fmt.Fprintf(&b, "threshold=%s\n", joinFloats(tree.Threshold))
		fmt.Fprintf(&b, "decision_type=%s\n", joinInts(decision))
		fmt.Fprintf(&b, "left_child=%s\n", joinInts(tree.LeftChild))
		fmt.Fprintf(&b, "right_child=%s\n", joinInts(tree.RightChild))
	}
	fmt.Fprintf(&b, "leaf_value=%s\n", joinFloats(tree.LeafValue))
	fmt.Fprintf(&b, "leaf_weight=%s\n", joinFloats(ones(nLeaves)))
	fmt.Fprintf(&b, "leaf_count=%s\n", joinInts(make([]int, nLeaves)))
	if nLeaves > 1 {
		fmt.Fprintf(&b, "internal_value=%s\n", joinFloats(make([]float64, nLeaves-1)))
		fmt.Fprintf(&b, "internal_weight=%s\n", joinFloats(make([]float64, nLeaves-1)))
		fmt.Fprintf(&b, "internal_count=%s\n", joinInts(make([]int, nLeaves-1)))
	}
	b.WriteString("shrinkage=1\n")
	b.WriteString("\n")
	return b.String()
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
