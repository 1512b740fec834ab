package view

import (
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
	"github.com/five82/akshrail/internal/submit"
)

// Upload renders the upload page around the form the UI draws. Outcomes of
// the last submission follow the form; a pending upload shows the spinner
// text instead of the final outcomes.
func Upload(in Input) render.Tree {
	nodes := []render.Node{
		render.Heading("📤 Upload New Documents to AkshRail"),
		render.Callout(render.ToneInfo, "Effortlessly upload engineering drawings, invoices, reports, and various other document types. Our system will automatically process them."),
		render.Button(ButtonUploadSubmit, "Upload Document & Process", nil),
	}
	nodes = append(nodes, outcomeNodes(in.Upload.Outcomes)...)
	if in.Upload.Pending {
		nodes = append(nodes, render.Callout(render.ToneNone, "⏳ "+submit.UploadSpinnerText))
	}
	if r := in.Upload.Receipt; r != nil && !in.Upload.Pending {
		nodes = append(nodes, render.Text("Receipt "+r.ID+" · "+r.FileName+" · "+r.Size))
	}
	nodes = append(nodes, decoration(in)...)
	nodes = append(nodes,
		render.Divider(),
		render.List("How it Works:",
			"1. Upload: your file is securely transmitted.",
			"2. OCR: if it's an image or scanned PDF, text is extracted.",
			"3. NLP: content is analyzed, summarized, and keywords are identified.",
			"4. Indexing: the document and its metadata are stored in ElasticSearch for rapid retrieval.",
		),
		functionsExpander(state.Upload, "🛠️ Functions and Technologies on Upload Page",
			"File picker: browse the filesystem for PDF, DOCX, JPG, PNG, TXT or XLSX files.",
			"Form: optional title and document type travel with the file.",
			"Backend integration (simulated): a live system would hand the file to the backend API here.",
			"OCR & NLP (backend): Tesseract or Google Cloud Vision for scans, SpaCy or Hugging Face for summaries and entities.",
			"Database & ElasticSearch (backend): processed data would be stored in PostgreSQL/MongoDB and indexed for search.",
			"Spinner: visual feedback while processing runs.",
		),
	)
	return tree(state.Upload, nodes...)
}
