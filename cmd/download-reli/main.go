package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ReLi corpus distribution page
const defaultIndexURL = "https://www.linguateca.pt/Repositorio/ReLi/"

func main() {
	var (
		indexURL = flag.String("url", defaultIndexURL, "Corpus index page URL")
		outDir   = flag.String("out", "testdata/reli", "Directory to download corpus files into")
	)
	flag.Parse()

	log.Printf("Fetching corpus index from %s ...", *indexURL)

	links, err := fetchTextLinks(*indexURL)
	if err != nil {
		log.Fatal("Failed to fetch corpus index:", err)
	}
	if len(links) == 0 {
		log.Fatal("No .txt files linked from the index page")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}

	downloaded := 0
	for _, link := range links {
		name := path.Base(link)
		dest := filepath.Join(*outDir, name)
		if _, err := os.Stat(dest); err == nil {
			log.Printf("Skipping %s (already present)", name)
			continue
		}

		if err := download(link, dest); err != nil {
			log.Printf("Failed to download %s: %v", name, err)
			continue
		}
		downloaded++
		log.Printf("Downloaded %s", name)

		// Be nice to the server
		time.Sleep(50 * time.Millisecond)
	}

	log.Printf("✓ Downloaded %d corpus files to %s", downloaded, *outDir)
}

// fetchTextLinks parses the index page and returns the absolute URLs of all
// linked .txt files.
func fetchTextLinks(indexURL string) ([]string, error) {
	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(indexURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	var links []string
	seen := make(map[string]struct{})
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				href := strings.TrimSpace(attr.Val)
				if !strings.HasSuffix(strings.ToLower(href), ".txt") {
					continue
				}
				ref, err := url.Parse(href)
				if err != nil {
					continue
				}
				abs := base.ResolveReference(ref).String()
				if _, ok := seen[abs]; ok {
					continue
				}
				seen[abs] = struct{}{}
				links = append(links, abs)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

func download(fileURL, dest string) error {
	resp, err := http.Get(fileURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dest)
		return err
	}
	return f.Close()
}
