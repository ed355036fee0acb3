package views

import (
	"bytes"
	"html/template"
	"net"
	"net/http"
)

const faviconPath = "/static/favicon.svg"

var headTemplate = template.Must(template.New("head").Parse(`<link rel="icon" type="image/svg+xml" href="{{.Favicon}}">
{{- if .MeasurementID}}
<script async src="https://www.googletagmanager.com/gtag/js?id={{.MeasurementID}}"></script>
<script>
  window.dataLayer = window.dataLayer || [];
  function gtag(){dataLayer.push(arguments);}
  gtag('js', new Date());
  gtag('config', {{.MeasurementID}});
</script>
{{- end}}`))

// head is the markup every page carries in <head>.
type head struct {
	favicon   template.HTML
	analytics template.HTML
}

func buildHead(measurementID string) (head, error) {
	var favicon, full bytes.Buffer
	if err := headTemplate.Execute(&favicon, map[string]string{"Favicon": faviconPath}); err != nil {
		return head{}, err
	}
	if measurementID == "" {
		return head{favicon: template.HTML(favicon.String())}, nil
	}
	data := map[string]string{"Favicon": faviconPath, "MeasurementID": measurementID}
	if err := headTemplate.Execute(&full, data); err != nil {
		return head{}, err
	}
	return head{favicon: template.HTML(favicon.String()), analytics: template.HTML(full.String())}, nil
}

// forRequest drops the analytics tag for local requests.
func (h head) forRequest(r *http.Request) template.HTML {
	if h.analytics == "" || r == nil || isLocalHost(r.Host) {
		return h.favicon
	}
	return h.analytics
}

func isLocalHost(hostport string) bool {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		host = hostport
	}
	return host == "localhost" || host == "127.0.0.1"
}
