// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

// indexHTML is the single-page upload form. It posts the file to /inspect on
// selection to show page count and dimensions, then to /stack on submit. The
// first copy lands at the bottom of the output page (y=0), the second above
// it with the chosen gap; no rotation or scaling is applied.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>PDF Label Duplicator</title>
<style>
 body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; }
 fieldset { border: 1px solid #ccc; margin-bottom: 1rem; }
 #info { color: #246; }
 #error { color: #a00; }
</style>
</head>
<body>
<h1>PDF Label Duplicator</h1>
<p>Duplicates one page of a PDF vertically with a gap, bottom-aligned.
No rotation or scaling.</p>
<form id="form">
 <fieldset>
  <legend>Input</legend>
  <input type="file" id="pdf" name="pdf" accept="application/pdf" required>
  <p id="info"></p>
 </fieldset>
 <fieldset>
  <legend>Placement</legend>
  <label>Page (0-based): <input type="number" name="page" min="0" value="0"></label><br>
  <label>Gap (inches): <input type="number" name="gap" min="0" step="0.01" value="0.12"></label><br>
  <label><input type="radio" name="box" value="mediabox" checked> MediaBox</label>
  <label><input type="radio" name="box" value="cropbox"> CropBox</label>
 </fieldset>
 <button type="submit">Create stacked PDF</button>
 <p id="error"></p>
</form>
<script>
const form = document.getElementById("form");
const info = document.getElementById("info");
const errBox = document.getElementById("error");

document.getElementById("pdf").addEventListener("change", async (e) => {
  info.textContent = "";
  errBox.textContent = "";
  const file = e.target.files[0];
  if (!file) return;
  const fd = new FormData();
  fd.append("pdf", file);
  const resp = await fetch("/inspect", { method: "POST", body: fd });
  const body = await resp.json();
  if (!resp.ok) {
    errBox.textContent = body.error + (body.detail ? ": " + body.detail : "");
    return;
  }
  const mb = body.pages[0].media_box;
  info.textContent = "Pages: " + body.page_count +
    ". MediaBox: " + mb.width_in.toFixed(3) + " in x " + mb.height_in.toFixed(3) + " in";
});

form.addEventListener("submit", async (e) => {
  e.preventDefault();
  errBox.textContent = "";
  const resp = await fetch("/stack", { method: "POST", body: new FormData(form) });
  if (!resp.ok) {
    const body = await resp.json();
    errBox.textContent = body.error + (body.detail ? ": " + body.detail : "");
    return;
  }
  const blob = await resp.blob();
  const a = document.createElement("a");
  a.href = URL.createObjectURL(blob);
  const cd = resp.headers.get("Content-Disposition") || "";
  const m = cd.match(/filename="?([^";]+)"?/);
  a.download = m ? m[1] : "stacked.pdf";
  a.click();
  URL.revokeObjectURL(a.href);
});
</script>
</body>
</html>
`
