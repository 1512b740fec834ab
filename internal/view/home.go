package view

import (
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
)

// Home renders the welcome page.
func Home(in Input) render.Tree {
	nodes := []render.Node{
		render.Heading("Welcome to AkshRail"),
		render.Subheading("Intelligent Document Management for Kochi Metro Rail"),
	}
	nodes = append(nodes, decoration(in)...)
	nodes = append(nodes,
		render.Text("AkshRail is an AI-powered solution designed to revolutionize document management for Kochi Metro Rail Limited. "+
			"Say goodbye to manual filing and hello to automated summaries, intelligent search, and actionable insights."),
		render.Callout(render.ToneInfo, "Our mission: To transform document overload into a streamlined, efficient information hub."),
		render.Divider(),
		render.Subheading("🚀 Core Capabilities"),
		render.Columns(
			render.List("OCR & Text Extraction", "Extracts text from scanned PDFs, images, and various document formats with high accuracy."),
			render.List("NLP for Insights", "Summarizes content, identifies key entities, and detects duplicates using advanced Natural Language Processing."),
			render.List("Smart Search & Linkage", "Provides blazing-fast search capabilities and automatically links related documents for comprehensive understanding."),
		),
		render.Divider(),
		render.Subheading("💡 Technologies & Functions Overview"),
		render.Expander("home-technologies", "Explore Technologies Used", render.List("",
			"OCR (Optical Character Recognition): Tesseract or cloud OCR services turn scanned documents into editable, searchable text.",
			"NLP (Natural Language Processing): SpaCy for entity recognition and summarization, Hugging Face Transformers for contextual understanding and duplicate checking.",
			"ElasticSearch: distributed search and analytics engine that indexes every document and builds semantic links between them.",
			"Database (PostgreSQL/MongoDB): PostgreSQL for structured metadata, MongoDB for document content and processed NLP data.",
			"Backend API: handles uploads, OCR processing, NLP tasks, database access and notifications.",
			"Staff console: this interactive, keyboard-driven dashboard for day-to-day use.",
			"Multi-language Support: NLP models that process English & Malayalam text.",
		)),
		render.Expander("home-methodology", "🛠️ Methodology (Stepwise)", render.List("",
			"1. Document Upload: staff upload documents (PDF/TXT/Scans) through a secure interface.",
			"2. Text Extraction (OCR): scanned documents go through OCR, then the text is cleaned and pre-processed.",
			"3. Processing & Summarization (NLP): extracted text feeds NLP pipelines for summaries, keywords and duplicate detection.",
			"4. Smart Storage & Search: documents and their metadata are indexed in ElasticSearch and stored in the database.",
			"5. Alerts & Dashboards: role-based dashboards give an overview and notifications deliver critical updates.",
		)),
		render.Expander("home-differences", "🌟 How it Differs from Current Metro System", render.List("",
			"The current system relies heavily on manual reading and filing, leading to inefficiencies.",
			"AkshRail automatically summarizes, searches, and intelligently links documents, saving countless hours.",
			"Role-specific dashboards give tailored information access.",
			"Multi-language support (English & Malayalam) broadens usability.",
			"Smart alerts & notifications flag critical updates and deadlines.",
		)),
		render.Expander("home-benefits", "✅ Key Benefits", render.List("",
			"Saves significant time: quick access to summaries and search results.",
			"Improves teamwork & collaboration: centralized, searchable access for all authorized staff.",
			"Ensures compliance: highlights critical updates and policy changes.",
			"Reduces duplicated effort: duplicate detection and summaries prevent redundant work.",
			"Preserves institutional knowledge: a living archive of documents and insights.",
			"Enhances decision-making: data-driven insights from document analytics.",
		)),
	)
	return tree(state.Home, nodes...)
}
