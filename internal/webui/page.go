package webui

// The form mirrors the calculator layout: base and target parameter groups on
// top, read-only process and key result groups below, the usage notes last.
// Every edit re-solves through the JSON API; the core is stateless so there
// is nothing to debounce or cache.
const pageHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Geopolymer Alkali Activator Calculator</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; background: #f6f7fb; color: #0f172a; margin: 0; padding: 1rem; }
main { max-width: 980px; margin: 0 auto; }
h1 { font-size: 1.5rem; margin: 0.2rem 0; }
.subtitle { color: #6b7280; margin-bottom: 1rem; }
.row { display: flex; gap: 1rem; flex-wrap: wrap; }
fieldset { flex: 1; min-width: 20rem; background: #fff; border: 1px solid #e5e7eb; border-radius: 12px; padding: 0.8rem 1rem; margin: 0 0 1rem; }
legend { font-weight: 700; padding: 0.2rem 0.7rem; border-radius: 8px; color: #fff; }
#base legend { background: #0ea5e9; }
#targets legend { background: #a855f7; }
#process legend { background: #f59e0b; }
#key legend { background: #22c55e; }
label { display: flex; justify-content: space-between; align-items: center; margin: 0.35rem 0; gap: 0.6rem; }
input { border: 1px solid #e5e7eb; border-radius: 8px; padding: 0.35rem 0.6rem; width: 11rem; }
input[readonly] { background: #f9fafb; }
#message { color: #c62828; min-height: 1.4rem; margin: 0.3rem 0; }
.toolbar a { margin-right: 0.8rem; }
.notes { color: #6b7280; font-size: 0.85rem; }
</style>
</head>
<body>
<main>
<h1>Geopolymer Alkali Activator Calculator</h1>
<div class="subtitle">Enter the base and target parameters; component masses and process metrics recompute on every edit.</div>

<div class="row">
<fieldset id="base"><legend>Base Parameters</legend>
<label>Solid precursor mass (g) <input id="solid_mass" value="200"></label>
<label>Silicate SiO2 fraction (0-1 or 0-100) <input id="silica_fraction" value="30"></label>
<label>Silicate Na2O fraction (0-1 or 0-100) <input id="soda_fraction" value="13.5"></label>
</fieldset>
<fieldset id="targets"><legend>Target Parameters</legend>
<label>Alkali modulus <input id="target_modulus" value="1.5"></label>
<label>Alkali-equivalent ratio <input id="target_alkali" value="0.15"></label>
<label>Solid/liquid ratio <input id="target_solid_liquid" value="0.6"></label>
</fieldset>
</div>

<div id="message"></div>

<div class="row">
<fieldset id="process"><legend>Process Results</legend>
<label>New liquid SiO2 fraction (%) <input readonly id="silica_fraction_new"></label>
<label>New liquid Na2O fraction (%) <input readonly id="soda_fraction_new"></label>
<label>New liquid density (g/cm3) <input readonly id="liquid_density"></label>
<label>New liquid mass (g) <input readonly id="liquid_mass"></label>
<label>Silicate modulus (verification) <input readonly id="silicate_modulus"></label>
<label>SiO2 mass in silicate (g) <input readonly id="silica_in_silicate"></label>
<label>Na2O mass in silicate (g) <input readonly id="soda_in_silicate"></label>
<label>Na2O equivalent from NaOH (g) <input readonly id="soda_from_hydroxide"></label>
<label>Initial alkali-equivalent ratio <input readonly id="initial_alkali"></label>
</fieldset>
<fieldset id="key"><legend>Key Results</legend>
<label>Silicate solution to add (g) <input readonly id="silicate_mass"></label>
<label>Sodium hydroxide to add (g) <input readonly id="hydroxide_mass"></label>
<label>Water to add (g) <input readonly id="water_mass"></label>
<label>Alkali modulus (back-calculated) <input readonly id="modulus_back"></label>
<label>Alkali-equivalent ratio (back-calculated) <input readonly id="final_alkali"></label>
<label>Solid/liquid ratio (back-calculated) <input readonly id="solid_liquid_back"></label>
</fieldset>
</div>

<div class="toolbar">
<a id="export-xlsx" href="#">Export xlsx</a>
<a id="export-csv" href="#">Export CSV</a>
<a id="export-sqlite" href="#">Export SQLite</a>
<a id="report-html" href="#" target="_blank">Batch sheet</a>
<a id="report-pdf" href="#">Batch sheet PDF</a>
</div>

<p class="notes">
Notes: solid precursor mass is the total solid raw material mass.
Fractions above 1 are read as 0-100 percent.
The alkali-equivalent ratio excludes liquid from its denominator; the
solid/liquid ratio counts silicate + NaOH + added water as liquid.
</p>
</main>

<script>
const fields = ["solid_mass","silica_fraction","soda_fraction","target_modulus","target_alkali","target_solid_liquid"];
const outputs = ["silica_fraction_new","soda_fraction_new","liquid_density","liquid_mass","silicate_modulus",
	"silica_in_silicate","soda_in_silicate","soda_from_hydroxide","initial_alkali",
	"silicate_mass","hydroxide_mass","water_mass","modulus_back","final_alkali","solid_liquid_back"];

function query() {
	const q = new URLSearchParams();
	for (const f of fields) q.set(f, document.getElementById(f).value);
	return q;
}

function updateLinks() {
	const q = query();
	document.getElementById("export-xlsx").href = "/v1/export?format=xlsx&" + q;
	document.getElementById("export-csv").href = "/v1/export?format=csv&" + q;
	document.getElementById("export-sqlite").href = "/v1/export?format=sqlite&" + q;
	document.getElementById("report-html").href = "/v1/report?" + q;
	document.getElementById("report-pdf").href = "/v1/report.pdf?" + q;
}

async function recompute() {
	updateLinks();
	const body = {};
	for (const f of fields) body[f] = document.getElementById(f).value;
	const resp = await fetch("/v1/solve", {method: "POST", body: JSON.stringify(body)});
	const data = await resp.json();
	const msg = document.getElementById("message");
	if (!data.ok) {
		msg.textContent = data.error.message;
		for (const o of outputs) document.getElementById(o).value = "";
		return;
	}
	msg.textContent = "";
	for (const [k, v] of Object.entries(data.key)) document.getElementById(k).value = v;
	for (const [k, v] of Object.entries(data.process)) document.getElementById(k).value = v;
}

for (const f of fields) document.getElementById(f).addEventListener("input", recompute);
recompute();
</script>
</body>
</html>
`
