// Package asset fetches the decorative Lottie animations shown beside each
// section.
//
// Fetch issues one GET with a short timeout and decodes the JSON body. A
// non-200 status, a transport error or an undecodable body all yield
// (Lottie{}, false); the cause is logged at debug level and the caller simply
// omits the decoration. There is no retry, no cache and no fallback asset, so
// every section display fetches again.
//
//	client := asset.NewClient(5*time.Second, logger)
//	if doc, ok := client.Fetch(ctx, url); ok {
//		node := render.AnimationNode(doc.Summary(url))
//	}
package asset
