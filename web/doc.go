// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package web renders the HTML pages of the polls site.

Templates are embedded from templates/ and parsed once at startup. Each
page has a data type:

	IndexPage   → IndexData
	DetailPage  → DetailData
	ResultsPage → ResultsData
	NotFoundPage → string message

Render buffers the output so a template error never produces a partial
page.
*/
package web
