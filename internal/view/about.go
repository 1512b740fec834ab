package view

import (
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
)

// About renders the vision, team and contact page.
func About(in Input) render.Tree {
	nodes := []render.Node{
		render.Heading("ℹ️ About AkshRail: Powering Kochi Metro's Future"),
		render.Text("AkshRail is a brainchild developed to tackle the challenges of document overload and information fragmentation at Kochi Metro Rail Limited."),
		render.Subheading("Our Vision"),
		render.Text("To establish a seamless, intelligent, and accessible document management ecosystem that enhances operational efficiency, fosters collaboration, and safeguards critical organizational knowledge for Kochi Metro."),
		render.Subheading("The Team"),
		render.Text("This solution is developed by a dedicated team with expertise in AI, web development, and data management, committed to delivering a robust and user-friendly system."),
		render.Subheading("Get in Touch"),
		render.Text("For support, feedback, or further inquiries, please contact our development team."),
		render.Divider(),
		render.List("🚀 Built with passion using:",
			"Go: the backbone of this console and its tooling.",
			"Bubble Tea & Lip Gloss: interactive, styled terminal interfaces.",
			"Backend API: document intake and task management.",
			"AI (NLP & OCR): the intelligence that powers summarization, search, and data extraction.",
			"ElasticSearch: lightning-fast, intelligent search and document indexing.",
			"PostgreSQL/MongoDB: reliable storage for structured and unstructured data.",
			"Cloud Storage: scalable and secure document storage (e.g., AWS S3, Google Cloud Storage).",
		),
	}
	nodes = append(nodes, decoration(in)...)
	nodes = append(nodes,
		render.Divider(),
		render.Text("© 2025 AkshRail. All rights reserved."),
	)
	return tree(state.About, nodes...)
}
