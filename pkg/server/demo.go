package server

// demoHTML is a minimal presentation client: it animates whatever the
// server-side lifecycle streams and acks each transition when the CSS
// transition ends.
const demoHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Glaze demo</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 2rem; }
  #toast {
    position: fixed; bottom: 2rem; left: 50%;
    height: 48px; border-radius: 24px;
    display: flex; align-items: center; justify-content: center;
    color: #fff; overflow: hidden; white-space: nowrap;
  }
  #toast.info    { background: #2563eb; }
  #toast.success { background: #16a34a; }
  #toast.error   { background: #dc2626; }
  #toast span { opacity: 0; }
</style>
</head>
<body>
<h1>Glaze</h1>
<button onclick="req('Saved!', 'success')">success</button>
<button onclick="req('Heads up', 'info')">info</button>
<button onclick="req('Something broke', 'error')">error</button>
<button onclick="send({type: 'dismiss'})">dismiss</button>
<div id="toast" class="info"><span></span></div>
<script>
  const toastEl = document.getElementById('toast');
  const textEl = toastEl.querySelector('span');
  const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');

  function send(obj) { if (ws.readyState === 1) ws.send(JSON.stringify(obj)); }
  function req(message, kind) { send({type: 'request', message, kind}); }

  ws.onopen = () => send({type: 'hello', screenWidth: window.innerWidth});

  function apply(prop, value, ms, seq) {
    const target = prop === 'textOpacity' ? textEl : toastEl;
    target.style.transition = cssProp(prop) + ' ' + ms + 'ms ease';
    requestAnimationFrame(() => {
      setCSS(prop, value);
      setTimeout(() => send({type: 'done', seq}), ms);
    });
  }

  function cssProp(prop) {
    return prop === 'offset' ? 'transform' : prop === 'width' ? 'width' : 'opacity';
  }

  function setCSS(prop, value) {
    if (prop === 'offset') {
      toastEl.style.transform = 'translate(-50%, ' + (value * 120) + 'px)';
    } else if (prop === 'width') {
      toastEl.style.width = value + 'px';
    } else {
      textEl.style.opacity = value;
    }
  }

  ws.onmessage = (e) => {
    const f = JSON.parse(e.data);
    if (f.type === 'prepare') {
      toastEl.style.transition = 'none';
      textEl.style.transition = 'none';
      toastEl.className = f.kind;
      textEl.textContent = f.message;
      setCSS('offset', 1);
      setCSS('width', 48);
      setCSS('textOpacity', 0);
    } else if (f.type === 'transition') {
      apply(f.prop, f.value, f.durationMs, f.seq);
    }
  };
</script>
</body>
</html>
`
