package harness

// JavaScript is the reflection harness for Node submissions. Parameter names
// are not reliably recoverable from a function value, so binding is
// positional over the ordered values of the input mapping. Reference-typed
// results (list, tree, graph nodes) are detected structurally on the way out.
const JavaScript = `"use strict";

function ListNode(val, next) {
    this.val = val === undefined ? 0 : val;
    this.next = next === undefined ? null : next;
}

function TreeNode(val, left, right) {
    this.val = val === undefined ? 0 : val;
    this.left = left === undefined ? null : left;
    this.right = right === undefined ? null : right;
}

function GraphNode(val, neighbors) {
    this.val = val === undefined ? 0 : val;
    this.neighbors = neighbors === undefined ? [] : neighbors;
}

function buildLinkedList(values, pos) {
    if (!values || values.length === 0) return null;
    const nodes = values.map((v) => new ListNode(v));
    for (let i = 0; i < nodes.length - 1; i++) nodes[i].next = nodes[i + 1];
    if (pos >= 0 && pos < nodes.length) nodes[nodes.length - 1].next = nodes[pos];
    return nodes[0];
}

function linkedListToArray(head) {
    const result = [];
    const seen = new Set();
    while (head !== null && head !== undefined && !seen.has(head)) {
        seen.add(head);
        result.push(head.val);
        head = head.next;
    }
    return result;
}

function buildTree(values) {
    if (!values || values.length === 0 || values[0] === null) return null;
    const root = new TreeNode(values[0]);
    const queue = [root];
    let i = 1;
    while (queue.length > 0 && i < values.length) {
        const node = queue.shift();
        if (i < values.length && values[i] !== null) {
            node.left = new TreeNode(values[i]);
            queue.push(node.left);
        }
        i++;
        if (i < values.length && values[i] !== null) {
            node.right = new TreeNode(values[i]);
            queue.push(node.right);
        }
        i++;
    }
    return root;
}

function treeToArray(root) {
    if (root === null || root === undefined) return [];
    const result = [];
    const queue = [root];
    while (queue.length > 0) {
        const node = queue.shift();
        if (node === null || node === undefined) {
            result.push(null);
            continue;
        }
        result.push(node.val);
        queue.push(node.left);
        queue.push(node.right);
    }
    while (result.length > 0 && result[result.length - 1] === null) result.pop();
    return result;
}

function graphToAdjList(node) {
    if (node === null || node === undefined) return [];
    const seen = new Set();
    const ordered = [];
    const queue = [node];
    let maxVal = 0;
    while (queue.length > 0) {
        const curr = queue.shift();
        if (curr === null || curr === undefined || seen.has(curr)) continue;
        seen.add(curr);
        ordered.push(curr);
        if (curr.val > maxVal) maxVal = curr.val;
        for (const n of curr.neighbors || []) {
            if (n !== null && !seen.has(n)) queue.push(n);
        }
    }
    const result = [];
    for (let i = 0; i < maxVal; i++) result.push([]);
    for (const curr of ordered) {
        result[curr.val - 1] = (curr.neighbors || []).map((n) => n.val);
    }
    return result;
}

function serializeResult(value) {
    if (value === null || value === undefined || typeof value !== "object") {
        return value === undefined ? null : value;
    }
    if (Array.isArray(value)) return value;
    if ("next" in value && "val" in value) return linkedListToArray(value);
    if (("left" in value || "right" in value) && "val" in value) return treeToArray(value);
    if ("neighbors" in value && "val" in value) return graphToAdjList(value);
    return value;
}

__SOURCE_CODE_PLACEHOLDER__

function resolveTarget(name) {
    try {
        const direct = eval(name);
        if (typeof direct === "function") return direct;
    } catch (_) {}
    try {
        const solutionCls = eval("Solution");
        if (typeof solutionCls === "function") {
            const instance = new solutionCls();
            if (typeof instance[name] === "function") return instance[name].bind(instance);
        }
    } catch (_) {}
    throw new Error("function '" + name + "' not found");
}

function main() {
    let raw = "";
    process.stdin.on("data", (chunk) => { raw += chunk; });
    process.stdin.on("end", () => {
        try {
            const payload = JSON.parse(raw);
            const target = resolveTarget(payload.function_name);
            const input = payload.input || {};
            const args = Object.keys(input)
                .filter((k) => k !== "pos")
                .map((k) => input[k]);
            const result = target.apply(null, args);
            console.log(JSON.stringify({ result: serializeResult(result) }));
        } catch (e) {
            console.log(JSON.stringify({ error: e && e.message ? e.message : String(e) }));
            process.exit(1);
        }
    });
}

main();
`

// TypeScript mirrors the JavaScript harness under the compiler flags the
// sandbox image uses; the ambient declarations avoid an @types/node
// dependency inside the image.
const TypeScript = `// Minimal Node global declarations (avoid @types/node dependency)
declare const process: any;
declare const console: any;

class ListNode {
    val: number;
    next: ListNode | null;
    constructor(val?: number, next?: ListNode | null) {
        this.val = val === undefined ? 0 : val;
        this.next = next === undefined ? null : next;
    }
}

class TreeNode {
    val: number;
    left: TreeNode | null;
    right: TreeNode | null;
    constructor(val?: number, left?: TreeNode | null, right?: TreeNode | null) {
        this.val = val === undefined ? 0 : val;
        this.left = left === undefined ? null : left;
        this.right = right === undefined ? null : right;
    }
}

class GraphNode {
    val: number;
    neighbors: GraphNode[];
    constructor(val?: number, neighbors?: GraphNode[]) {
        this.val = val === undefined ? 0 : val;
        this.neighbors = neighbors === undefined ? [] : neighbors;
    }
}

function buildLinkedList(values: number[], pos: number): ListNode | null {
    if (!values || values.length === 0) return null;
    const nodes = values.map((v) => new ListNode(v));
    for (let i = 0; i < nodes.length - 1; i++) nodes[i].next = nodes[i + 1];
    if (pos >= 0 && pos < nodes.length) nodes[nodes.length - 1].next = nodes[pos];
    return nodes[0];
}

function linkedListToArray(head: ListNode | null): number[] {
    const result: number[] = [];
    const seen = new Set<ListNode>();
    while (head !== null && !seen.has(head)) {
        seen.add(head);
        result.push(head.val);
        head = head.next;
    }
    return result;
}

function buildTree(values: (number | null)[]): TreeNode | null {
    if (!values || values.length === 0 || values[0] === null) return null;
    const root = new TreeNode(values[0] as number);
    const queue: TreeNode[] = [root];
    let i = 1;
    while (queue.length > 0 && i < values.length) {
        const node = queue.shift() as TreeNode;
        if (i < values.length && values[i] !== null) {
            node.left = new TreeNode(values[i] as number);
            queue.push(node.left);
        }
        i++;
        if (i < values.length && values[i] !== null) {
            node.right = new TreeNode(values[i] as number);
            queue.push(node.right);
        }
        i++;
    }
    return root;
}

function treeToArray(root: TreeNode | null): (number | null)[] {
    if (root === null) return [];
    const result: (number | null)[] = [];
    const queue: (TreeNode | null)[] = [root];
    while (queue.length > 0) {
        const node = queue.shift();
        if (node === null || node === undefined) {
            result.push(null);
            continue;
        }
        result.push(node.val);
        queue.push(node.left);
        queue.push(node.right);
    }
    while (result.length > 0 && result[result.length - 1] === null) result.pop();
    return result;
}

function graphToAdjList(node: GraphNode | null): number[][] {
    if (node === null) return [];
    const seen = new Set<GraphNode>();
    const ordered: GraphNode[] = [];
    const queue: GraphNode[] = [node];
    let maxVal = 0;
    while (queue.length > 0) {
        const curr = queue.shift() as GraphNode;
        if (seen.has(curr)) continue;
        seen.add(curr);
        ordered.push(curr);
        if (curr.val > maxVal) maxVal = curr.val;
        for (const n of curr.neighbors) {
            if (!seen.has(n)) queue.push(n);
        }
    }
    const result: number[][] = [];
    for (let i = 0; i < maxVal; i++) result.push([]);
    for (const curr of ordered) {
        result[curr.val - 1] = curr.neighbors.map((n) => n.val);
    }
    return result;
}

function serializeResult(value: any): any {
    if (value === null || value === undefined || typeof value !== "object") {
        return value === undefined ? null : value;
    }
    if (Array.isArray(value)) return value;
    if ("next" in value && "val" in value) return linkedListToArray(value);
    if (("left" in value || "right" in value) && "val" in value) return treeToArray(value);
    if ("neighbors" in value && "val" in value) return graphToAdjList(value);
    return value;
}

__SOURCE_CODE_PLACEHOLDER__

function resolveTarget(name: string): Function {
    try {
        const direct = eval(name);
        if (typeof direct === "function") return direct;
    } catch (_) {}
    try {
        const solutionCls = eval("Solution");
        if (typeof solutionCls === "function") {
            const instance = new solutionCls();
            if (typeof instance[name] === "function") return instance[name].bind(instance);
        }
    } catch (_) {}
    throw new Error("function '" + name + "' not found");
}

function main(): void {
    let raw = "";
    process.stdin.on("data", (chunk: any) => { raw += chunk; });
    process.stdin.on("end", () => {
        try {
            const payload = JSON.parse(raw);
            const target = resolveTarget(payload.function_name);
            const input = payload.input || {};
            const args = Object.keys(input)
                .filter((k: string) => k !== "pos")
                .map((k: string) => input[k]);
            const result = target.apply(null, args);
            console.log(JSON.stringify({ result: serializeResult(result) }));
        } catch (e: any) {
            console.log(JSON.stringify({ error: e && e.message ? e.message : String(e) }));
            process.exit(1);
        }
    });
}

main();
`
