package render

const websiteHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Brand.Name}} - AI Learning</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 0; background: #f5f7fa; }
    .header { background: linear-gradient(135deg, {{.Brand.Primary}}, {{.Brand.Secondary}});
              color: white; padding: 3rem 2rem; text-align: center; }
    .container { max-width: 1200px; margin: 0 auto; padding: 2rem; }
    .section { margin: 3rem 0; }
    .section-title { font-size: 2rem; color: #333; margin-bottom: 1.5rem;
                     border-bottom: 3px solid {{.Brand.Primary}}; padding-bottom: 0.5rem; }
    .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(350px, 1fr)); gap: 2rem; }
    .card { background: white; padding: 2rem; border-radius: 12px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
    .card h3 { color: {{.Brand.Primary}}; margin-bottom: 1rem; }
    .btn { display: inline-block; padding: 0.6rem 1.2rem; background: {{.Brand.Primary}};
           color: white; text-decoration: none; border-radius: 20px; margin-top: 1rem; }
  </style>
</head>
<body>
  <div class="header">
    <h1>🤖 {{.Brand.Name}}</h1>
    <p>{{.Brand.Tagline}}</p>
    <p>Updated: {{.Date}}</p>
  </div>
  <div class="container">
    <div class="section" id="products">
      <h2 class="section-title">🚀 Latest AI Products</h2>
      <div class="grid">
        {{range .Products}}
        <div class="card product">
          <h3>{{.Title}}</h3>
          <p><small>{{.Source}}</small></p>
          <a href="{{.URL}}" class="btn" target="_blank" rel="noopener">Read More →</a>
        </div>
        {{end}}
      </div>
    </div>
    <div class="section" id="industries">
      <h2 class="section-title">🏭 AI by Industry</h2>
      <div class="grid">
        {{range .Industries}}
        <div class="card industry">
          <h3>{{.Name}}</h3>
          <p>{{.Count}} use cases</p>
        </div>
        {{end}}
      </div>
    </div>
  </div>
  <div style="background: #2c3e50; color: white; text-align: center; padding: 2rem;">
    <p>© {{.Year}} {{.Brand.Name}}</p>
    <p><a href="mailto:{{.Brand.Contact}}" style="color: {{.Brand.Primary}};">{{.Brand.Contact}}</a></p>
  </div>
</body>
</html>
`

const newsletterHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>AI Newsletter</title>
</head>
<body style="font-family: Arial; max-width: 600px; margin: 0 auto; background: #f5f7fa;">
  <div style="background: linear-gradient(135deg, {{.Brand.Primary}}, {{.Brand.Secondary}}); color: white; padding: 30px; text-align: center;">
    <h1>🤖 {{.Brand.Name}}</h1>
    <p>{{.Brand.Tagline}}</p>
    <p>{{.Date}}</p>
  </div>
  <div style="background: white; padding: 30px;">
    <h2 style="color: {{.Brand.Primary}};">🚀 This Week's Top AI Products</h2>
    {{range .Products}}
    <div class="product" style="padding: 15px; margin: 10px 0; background: #f8f9fa; border-left: 4px solid {{$.Brand.Primary}};">
      <strong>{{.Number}}. {{.Title}}</strong><br>
      <small>{{.Source}}</small><br>
      <a href="{{.URL}}" style="color: {{$.Brand.Primary}};">Read More →</a>
    </div>
    {{end}}
    <div style="text-align: center; margin: 30px 0;">
      <a class="cta" href="{{.Brand.HubURL}}" style="display: inline-block; padding: 12px 30px; background: {{.Brand.Primary}}; color: white; text-decoration: none; border-radius: 25px;">
        Visit Full Hub →
      </a>
    </div>
  </div>
  <div style="background: #2c3e50; color: white; padding: 20px; text-align: center;">
    <p>{{.Brand.Name}}</p>
    <p><a href="mailto:{{.Brand.Contact}}" style="color: {{.Brand.Primary}};">{{.Brand.Contact}}</a></p>
  </div>
</body>
</html>
`
