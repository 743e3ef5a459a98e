// Package clustergo provides customer-segmentation clustering for tabular data.
//
// Clustergo loads a table of named columns, preprocesses it (imputation,
// categorical encoding, feature scaling), partitions the rows with k-means
// and projects the result to two dimensions for plotting.
//
// # Quick Start
//
//	ctx := context.Background()
//	f, _ := frame.ReadCSV(file)
//
//	seg := clustergo.New(clustergo.WithSeed(42), clustergo.WithRestarts(10))
//	result, _ := seg.Fit(ctx, f, []string{"Age", "Annual Income (k$)", "Spending Score (1-100)"}, 4)
//	for i, label := range result.Labels {
//	    fmt.Println(i, label, result.Projection.Row(i))
//	}
//
// # Choosing k
//
// The engine never picks k for you. SweepK returns the (k, inertia) elbow
// curve; plot it, or use Knee for a suggestion:
//
//	curve, _ := seg.SweepK(ctx, f, features, 1, 10)
//	if k, ok := curve.Knee(); ok {
//	    fmt.Println("suggested k:", k)
//	}
//
// # Key Features
//
//   - Deterministic fits: seeded k-means++ with reproducible restarts
//   - Parallel restarts joined by a minimum-inertia reduction
//   - scikit-learn-shaped preprocessing (impute, one-hot, scale)
//   - PCA projection for the plotting side
//   - CSV and XLSX loading with type inference
package clustergo
