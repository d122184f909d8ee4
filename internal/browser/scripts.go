package browser

// Elements found by the form scanners are tagged with data-autoapply so later
// actions can address them with a plain attribute selector.
const scanPrelude = `
const isVisible = (el) => !!(el && (el.offsetWidth || el.offsetHeight || el.getClientRects().length));
window.__autoapplySeq = window.__autoapplySeq || 0;
const tag = (el) => {
  if (!el.dataset.autoapply) { el.dataset.autoapply = String(++window.__autoapplySeq); }
  return '[data-autoapply="' + el.dataset.autoapply + '"]';
};
const labelOf = (el) => {
  if (el.id) {
    const l = document.querySelector('label[for="' + CSS.escape(el.id) + '"]');
    if (l && l.innerText.trim()) { return l.innerText.trim(); }
  }
  return (el.getAttribute('aria-label') || '').trim();
};
`

const textFieldsScript = `(() => {` + scanPrelude + `
  return Array.from(document.querySelectorAll('input[type="text"], input[type="number"], input:not([type])'))
    .filter(isVisible)
    .map((el) => ({ selector: tag(el), label: labelOf(el), value: el.value || '' }));
})()`

const radioGroupsScript = `(() => {` + scanPrelude + `
  return Array.from(document.querySelectorAll('fieldset'))
    .filter((fs) => isVisible(fs) && fs.querySelector('input[type="radio"]'))
    .map((fs) => ({
      selector: tag(fs),
      checked: !!fs.querySelector('input[type="radio"]:checked'),
      options: Array.from(fs.querySelectorAll('label')).filter(isVisible).map((l) => ({
        selector: tag(l), value: '', text: l.innerText.trim(),
      })),
    }));
})()`

const dropdownsScript = `(() => {` + scanPrelude + `
  return Array.from(document.querySelectorAll('select'))
    .filter(isVisible)
    .map((s) => ({
      selector: tag(s),
      options: Array.from(s.options).map((o) => ({ selector: '', value: o.value, text: o.text.trim() })),
    }));
})()`

// %q placeholders: text, selector.
const findByTextScript = `(() => {` + scanPrelude + `
  const want = %q.toLowerCase();
  const el = Array.from(document.querySelectorAll(%q))
    .find((e) => isVisible(e) && (e.innerText || '').toLowerCase().includes(want));
  return el ? tag(el) : '';
})()`

// %q placeholder: selector.
const visibleScript = `(() => {` + scanPrelude + `
  return isVisible(document.querySelector(%q));
})()`

// %q placeholder: selector.
const textScript = `(() => {
  const el = document.querySelector(%q);
  return el ? { ok: true, text: (el.innerText || el.textContent || '').trim() } : { ok: false, text: '' };
})()`

// %q, %d placeholders: selector, index.
const clickNthScript = `(() => {
  const el = document.querySelectorAll(%q)[%d];
  if (!el) { return false; }
  el.scrollIntoView({ block: 'center' });
  el.click();
  return true;
})()`

// %q placeholder: selector.
const clickScript = `(() => {
  const el = document.querySelector(%q);
  if (!el) { return false; }
  el.scrollIntoView({ block: 'center' });
  el.click();
  return true;
})()`

// %q, %q placeholders: selector, value.
const selectScript = `(() => {
  const el = document.querySelector(%q);
  if (!el) { return false; }
  el.value = %q;
  el.dispatchEvent(new Event('input', { bubbles: true }));
  el.dispatchEvent(new Event('change', { bubbles: true }));
  return true;
})()`

// %q placeholder: selector.
const scrollScript = `(() => {
  const el = document.querySelector(%q);
  if (!el) { return false; }
  el.scrollTop = el.scrollHeight;
  return true;
})()`
