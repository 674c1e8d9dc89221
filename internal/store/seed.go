package store

import (
	"fmt"

	"github.com/worldmapx/worldmapx-be/internal/models"
)

// Seed inserts the fixed sample data set through the normal create path so
// identifiers and timestamps are assigned the same way as API-created
// records. Call it once, on an empty store, at process start.
func (s *Store) Seed() error {
	categories := []models.Category{
		{
			Name:        "Historical Maps",
			Slug:        "maps",
			Description: "Explore antique cartography from across the centuries",
			Image:       "https://images.unsplash.com/photo-1524661135-423995f22d0b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Order:       1,
		},
		{
			Name:        "Vintage Prints",
			Slug:        "prints",
			Description: "Historical illustrations & artistic prints from master artisans",
			Image:       "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Order:       2,
		},
		{
			Name:        "Historical Photography",
			Slug:        "photos",
			Description: "Rare photographic glimpses of the past",
			Image:       "https://images.unsplash.com/photo-1502657877623-f66bf489d236?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Order:       3,
		},
		{
			Name:        "Ephemera",
			Slug:        "ephemera",
			Description: "Tickets, pamphlets & printed materials from bygone eras",
			Image:       "https://images.unsplash.com/photo-1591280063155-f93144ae2de9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Order:       4,
		},
		{
			Name:        "Manuscripts",
			Slug:        "manuscripts",
			Description: "Handwritten documents and letters of historical significance",
			Image:       "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Order:       5,
		},
		{
			Name:        "Other Artifacts",
			Slug:        "other",
			Description: "Unique historical items that defy categorization",
			Image:       "https://images.unsplash.com/photo-1600695567242-a341bbc2c57a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Order:       6,
		},
	}

	created := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		stored, err := s.CreateCategory(c)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Slug, err)
		}
		created = append(created, stored)
	}

	products := []models.Product{
		{
			Name:             "1755 Map of North America",
			Slug:             "1755-map-of-north-america",
			Description:      "This rare 18th century map shows the colonies and territories before the American Revolution. Created by prominent cartographer John Mitchell, it features exquisite hand-coloring and remarkable detail, showing territorial claims, indigenous lands, and early settlements across the continent. It served as an important reference during the negotiations of the Treaty of Paris (1783).\n\nThis museum-quality reproduction is printed on archival paper using fade-resistant inks and comes with a certificate of authenticity.",
			ShortDescription: "Rare 18th century map showing the colonies and territories before the American Revolution.",
			Price:            "1250",
			CategoryID:       created[0].ID,
			Image:            "https://images.unsplash.com/photo-1524661135-423995f22d0b?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			Gallery: []string{
				"https://images.unsplash.com/photo-1524661135-423995f22d0b?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1519999482648-25049ddd37b1?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Featured: true,
			IsNew:    false,
			InStock:  true,
		},
		{
			Name:             "Victorian Botanical Print",
			Slug:             "victorian-botanical-print",
			Description:      "This exquisite hand-colored lithograph comes from a rare Victorian botanical compendium published in 1872, featuring stunning illustrations of exotic flowers and plants discovered during the great era of Victorian exploration. The vibrant colors remain remarkably well-preserved.\n\nThe print is professionally mounted and ready for framing, with detailed information about the species depicted and its historical context.",
			ShortDescription: "Exquisite hand-colored lithograph from a rare Victorian botanical compendium.",
			Price:            "385",
			CategoryID:       created[1].ID,
			Image:            "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			Gallery: []string{
				"https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Featured: false,
			IsNew:    false,
			InStock:  true,
		},
		{
			Name:             "Ellis Island Immigration Photo",
			Slug:             "ellis-island-immigration-photo",
			Description:      "This original silver gelatin print documents European immigrants arriving at Ellis Island, circa 1910. Captured by renowned photographer Lewis Hine, the image shows a family of newly arrived immigrants waiting to be processed, their expressions conveying both hope and uncertainty.\n\nThe print comes with complete provenance documentation and is archivally framed to museum standards.",
			ShortDescription: "Original silver gelatin print documenting European immigrants at Ellis Island, circa 1910.",
			Price:            "750",
			CategoryID:       created[2].ID,
			Image:            "https://images.unsplash.com/photo-1502657877623-f66bf489d236?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			Gallery: []string{
				"https://images.unsplash.com/photo-1502657877623-f66bf489d236?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Featured: true,
			IsNew:    true,
			InStock:  true,
		},
		{
			Name:             "Civil War Era Letter",
			Slug:             "civil-war-era-letter",
			Description:      "This remarkable handwritten letter was written by a Union soldier to his family in 1863. The four-page letter provides a firsthand account of camp life, military movements, and the writer's personal reflections on the conflict, with clearly legible script throughout.\n\nThe letter comes with a full transcription, historical context notes, and a museum-quality archival display case that allows viewing of both sides of the document.",
			ShortDescription: "Handwritten letter from a Union soldier to his family, dated 1863 with historical context.",
			Price:            "895",
			CategoryID:       created[4].ID,
			Image:            "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			Gallery: []string{
				"https://images.unsplash.com/photo-1589829545856-d10d557cf95f?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Featured: true,
			IsNew:    false,
			InStock:  true,
		},
		{
			Name:             "1920s New York Transit Token",
			Slug:             "1920s-new-york-transit-token",
			Description:      "This authentic New York City transit token dates from the 1920s. Made of brass with the distinctive 'NYC' cutout design, it was used during the early expansion period of the subway system and shows a beautiful patina developed over its century of existence.\n\nThe token comes in a custom display case with a detailed history card explaining its significance in the development of urban mass transit.",
			ShortDescription: "Authentic brass transit token from New York City's early subway system expansion.",
			Price:            "125",
			CategoryID:       created[5].ID,
			Image:            "https://images.unsplash.com/photo-1600695567242-a341bbc2c57a?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			Gallery: []string{
				"https://images.unsplash.com/photo-1600695567242-a341bbc2c57a?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Featured: false,
			IsNew:    true,
			InStock:  true,
		},
		{
			Name:             "1930s Travel Poster",
			Slug:             "1930s-travel-poster",
			Description:      "This original 1930s art deco travel poster promotes tourism to the Mediterranean. Created by celebrated graphic artist Pierre Dubois, it exemplifies the golden age of travel poster design with its bold colors, dynamic composition, and romanticized imagery, printed using the stone lithograph technique.\n\nThe poster has been professionally linen-backed for preservation and comes ready to frame with a certificate of authenticity.",
			ShortDescription: "Original art deco travel poster from the 1930s promoting Mediterranean tourism.",
			Price:            "1875",
			CategoryID:       created[3].ID,
			Image:            "https://images.unsplash.com/photo-1591280063155-f93144ae2de9?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			Gallery: []string{
				"https://images.unsplash.com/photo-1591280063155-f93144ae2de9?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Featured: false,
			IsNew:    false,
			InStock:  true,
		},
		{
			Name:             "18th Century World Atlas",
			Slug:             "18th-century-world-atlas",
			Description:      "This rare complete set of an 18th century world atlas, published in 1762 by renowned mapmaker Thomas Jefferys, contains 60 hand-colored maps documenting global geographic knowledge of the Enlightenment. Decorative title pages, ornate cartouches, and beautifully rendered geographical features blend scientific accuracy with artistic expression.\n\nThe atlas comes with a custom archival case and detailed scholarly documentation of its provenance.",
			ShortDescription: "Complete 60-map atlas from 1762 showing global geographic knowledge of the Enlightenment era.",
			Price:            "12500",
			CategoryID:       created[0].ID,
			Image:            "https://images.unsplash.com/photo-1599384066748-b91984d16d67?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			Gallery: []string{
				"https://images.unsplash.com/photo-1599384066748-b91984d16d67?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Featured: true,
			IsNew:    false,
			InStock:  true,
		},
		{
			Name:             "Early Antarctic Expedition Photo",
			Slug:             "early-antarctic-expedition-photo",
			Description:      "This remarkable vintage photograph documents one of the early Antarctic expeditions from 1911. The silver gelatin print, attributed to pioneering polar photographer Frank Hurley, shows expedition members with their equipment against the harsh Antarctic landscape, with exceptional image quality given the conditions.\n\nThe photograph is professionally framed with UV-protective glass and comes with detailed expedition documentation.",
			ShortDescription: "Authentic silver gelatin print from a 1911 Antarctic expedition showing explorers and equipment.",
			Price:            "1950",
			CategoryID:       created[2].ID,
			Image:            "https://images.unsplash.com/photo-1551871841-3c79ac8daeaf?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			Gallery: []string{
				"https://images.unsplash.com/photo-1551871841-3c79ac8daeaf?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			},
			Featured: false,
			IsNew:    false,
			InStock:  true,
		},
	}

	for _, p := range products {
		if _, err := s.CreateProduct(p); err != nil {
			return fmt.Errorf("seeding product %q: %w", p.Slug, err)
		}
	}

	posts := []models.BlogPost{
		{
			Title:     "The Lost Art of Cartography",
			Slug:      "the-lost-art-of-cartography",
			Excerpt:   "Exploring the methods, tools and artistic approaches of historical mapmakers across the centuries, from the Middle Ages to the Victorian era.",
			Content:   "## The Lost Art of Cartography\n\nCartography has evolved dramatically over the centuries, transforming from an artistic pursuit filled with speculation and mythology to a precise scientific discipline. Yet in this transformation something magical was lost: the personality, artistry, and human touch that characterized historical maps have largely disappeared from our modern, satellite-derived representations of the world.\n\n### The Golden Age of Mapmaking\n\nThe period from the 15th to the 18th centuries is often considered the golden age of cartography. Maps were as much works of art as functional tools, embellished with elaborate illustrations, decorative cartouches, and fantastic creatures believed to inhabit unexplored regions. Mapmakers like Abraham Ortelius, Gerardus Mercator, and Joan Blaeu combined scientific knowledge with artistic vision to create works that continue to captivate us today.\n\n### Tools and Techniques\n\nCreating a map in the pre-industrial era involved surveying instruments such as quadrants and astrolabes, precise drafting tools, copper plate engraving for reproduction, and skilled hand coloring with watercolors. A single map might take months or even years to complete.\n\n### The Enduring Appeal of Antique Maps\n\nIn our digital age, antique maps connect us to our collective journey of discovery. The personality evident in hand-drawn mountains, the artistry in decorative borders, and even the errors visible in early maps tell human stories that purely accurate representations cannot. For collectors, historical maps offer a tangible connection to how previous generations understood and imagined their world.",
			Image:     "https://images.unsplash.com/photo-1493217465235-252dd9c0d632?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			ReadTime:  8,
			Published: true,
		},
		{
			Title:     "Decoding Historical Photography",
			Slug:      "decoding-historical-photography",
			Excerpt:   "Understanding the techniques, processes and cultural significance of early photography from daguerreotypes to early gelatin silver prints.",
			Content:   "## Decoding Historical Photography\n\nThe invention of photography in the 19th century forever changed how humanity documents the world. Historical photographs provide an unparalleled window into the past, but understanding them requires knowledge of their technical processes, historical context, and cultural significance.\n\n### The Evolution of Early Photographic Processes\n\nDaguerreotypes (1839-1860s) were one-of-a-kind images on silver-plated copper sheets with remarkable detail and a distinctive reflective quality. Ambrotypes and tintypes (1850s-1900s) made photography accessible to broader segments of society; tintypes became particularly popular during the American Civil War. Albumen prints (1850s-1890s) allowed multiple copies from a single negative, and gelatin silver prints (1880s onward) remained the foundation of black and white photography until the digital revolution.\n\n### Reading Historical Photographs\n\nThe photographic process itself often provides the first clue to dating an image. Formats like cabinet cards and cartes de visite were popular during specific periods, while fashion, architecture, and visible technology place an image within particular decades.\n\n### The Cultural Impact\n\nPhotography democratized portraiture, documented conflicts like the American Civil War in unprecedented ways, and became an essential tool for science and exploration. Each photograph contains multiple stories: about the process that created it, the subject it depicts, and the culture that shaped it.",
			Image:     "https://images.unsplash.com/photo-1563293723-f5ccde1c8d29?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			ReadTime:  6,
			Published: true,
		},
		{
			Title:     "Collecting Historical Manuscripts",
			Slug:      "collecting-historical-manuscripts",
			Excerpt:   "A guide to starting and building a meaningful collection of historical manuscripts, letters and documents with provenance considerations.",
			Content:   "## Collecting Historical Manuscripts\n\nThere is something profoundly moving about holding a handwritten letter or document from the past. Manuscripts bear the direct imprint of their creators, offering an immediate and intimate connection to the past that few other artifacts can match.\n\n### Understanding Historical Manuscripts\n\nThe term encompasses personal correspondence, official documents, literary drafts, diaries and journals, financial records, and scientific notes. What unites them is their handwritten nature and direct connection to the individuals who created them.\n\n### Getting Started\n\nSuccessful collectors define a focus: a historical period, a geographic region, a theme, or notable individuals. Beginning collectors can find satisfaction in accessible materials like letters from ordinary soldiers or business correspondence from historical companies, available at moderate price points.\n\n### Evaluating Manuscripts\n\nAuthenticity is verified through handwriting, paper, ink, and content. Provenance, the documented history of ownership, significantly impacts both value and historical context. Condition and, above all, content and historical significance determine a manuscript's importance.\n\n### Caring for a Collection\n\nStable temperature and humidity, minimal light exposure, acid-free housing materials, and careful handling practices are essential to preserving manuscripts for future generations. For valuable or deteriorating items, professional conservators can stabilize and protect the originals.",
			Image:     "https://images.unsplash.com/photo-1608217009408-c96a99dc3936?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			ReadTime:  10,
			Published: true,
		},
	}

	for _, p := range posts {
		if _, err := s.CreateBlogPost(p); err != nil {
			return fmt.Errorf("seeding blog post %q: %w", p.Slug, err)
		}
	}

	return nil
}
