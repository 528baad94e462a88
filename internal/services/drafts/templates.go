package drafts

import "github.com/flosch/pongo2/v6"

// Message templates per channel. Output is plain text, so autoescaping is off.

var emailSubject = pongo2.Must(pongo2.FromString(
    `Action needed: {{ count }} document{{ count|pluralize }} for {{ reference }}`))

var emailBody = pongo2.Must(pongo2.FromString(`{% autoescape off %}{% if tone == "friendly" %}Hi {{ first_name }},{% else %}Dear {{ client }},{% endif %}

We have reviewed the documents for your application ({{ reference }}) and need your help with the following:
{% for item in items %}
- {{ item.Document }}: {{ item.Action }}{% endfor %}
{% if deadline %}
Please send these by {{ deadline }} so we can keep your application on track.
{% endif %}
Kind regards,
{{ advisor }}{% endautoescape %}`))

var smsBody = pongo2.Must(pongo2.FromString(`{% autoescape off %}{{ reference }}: {{ count }} item{{ count|pluralize }} need{{ count|pluralize:"s," }} your attention ({% for item in items %}{{ item.Document }}{% if not forloop.Last %}, {% endif %}{% endfor %}). Details are in your portal.{% if deadline %} Due {{ deadline }}.{% endif %} - {{ advisor }}{% endautoescape %}`))

var portalSubject = pongo2.Must(pongo2.FromString(`{{ count }} item{{ count|pluralize }} to update`))

var portalBody = pongo2.Must(pongo2.FromString(`{% autoescape off %}{% for item in items %}{{ forloop.Counter }}. {{ item.Document }}
   {{ item.Action }}
{% endfor %}{% if deadline %}
Due by {{ deadline }}.{% endif %}{% endautoescape %}`))
